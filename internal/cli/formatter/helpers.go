package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// ScaleBar renders a 1-10 self-report value as a bar like [███░░░░░░░] 3/10.
// Low stress reads green; the inverted flag flips the coloring for fields
// where high is good (mood, energy).
func ScaleBar(value int, inverted bool) string {
	if value < 0 {
		value = 0
	}
	if value > 10 {
		value = 10
	}

	bar := strings.Repeat(filledBlock, value) + strings.Repeat(emptyBlock, 10-value)

	style := StyleGreen
	high := value >= 7
	mid := value >= 4
	if inverted {
		// High values are good.
		switch {
		case high:
			style = StyleGreen
		case mid:
			style = StyleYellow
		default:
			style = StyleRed
		}
	} else {
		// High values are bad.
		switch {
		case high:
			style = StyleRed
		case mid:
			style = StyleYellow
		default:
			style = StyleGreen
		}
	}

	return fmt.Sprintf("[%s] %2d/10", style.Render(bar), value)
}

// FormatClock renders whole seconds as m:ss.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// Bullets renders a list of lines as dim-bulleted items.
func Bullets(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(StyleDim.Render("  • "))
		b.WriteString(StyleFg.Render(item))
		b.WriteString("\n")
	}
	return b.String()
}
