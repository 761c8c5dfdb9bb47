package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lmoretti/respite/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StressStyle returns the lipgloss style for a stress level.
func StressStyle(level domain.StressLevel) lipgloss.Style {
	switch level {
	case domain.StressMinimal, domain.StressLow:
		return StyleGreen
	case domain.StressModerate:
		return StyleYellow
	case domain.StressHigh:
		return StyleYellow
	case domain.StressSevere, domain.StressCritical:
		return StyleRed
	default:
		return StyleDim
	}
}

// StressIndicator returns a colored indicator string such as "● HIGH".
func StressIndicator(level domain.StressLevel) string {
	if level == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return StressStyle(level).Render("● " + strings.ToUpper(string(level)))
}

// BreakStatusPill renders a break execution state.
func BreakStatusPill(status domain.BreakStatus) string {
	switch status {
	case domain.BreakActive:
		return StyleYellow.Render("▶ active")
	case domain.BreakCompleted:
		return StyleGreen.Render("✓ completed")
	default:
		return StyleDim.Render("· upcoming")
	}
}

// TrendIndicator renders a mood trend with a direction arrow.
func TrendIndicator(trend domain.MoodTrend) string {
	switch trend {
	case domain.TrendImproving:
		return StyleGreen.Render("↑ improving")
	case domain.TrendDeclining:
		return StyleRed.Render("↓ declining")
	default:
		return StyleDim.Render("→ stable")
	}
}

// Header renders a section header with the accent style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
