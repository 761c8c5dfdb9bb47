package formatter

import (
	"strings"
	"testing"

	"github.com/lmoretti/respite/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", FormatClock(0))
	assert.Equal(t, "0:59", FormatClock(59))
	assert.Equal(t, "1:00", FormatClock(60))
	assert.Equal(t, "5:05", FormatClock(305))
	// Negative values clamp to zero.
	assert.Equal(t, "0:00", FormatClock(-10))
}

func TestScaleBar_Bounds(t *testing.T) {
	assert.Contains(t, ScaleBar(3, false), " 3/10")
	assert.Contains(t, ScaleBar(0, false), " 0/10")
	// Out-of-range values clamp.
	assert.Contains(t, ScaleBar(15, false), "10/10")
	assert.Contains(t, ScaleBar(-2, false), " 0/10")
}

func TestScaleBar_FillMatchesValue(t *testing.T) {
	bar := ScaleBar(4, false)
	assert.Equal(t, 4, strings.Count(bar, filledBlock))
	assert.Equal(t, 6, strings.Count(bar, emptyBlock))
}

func TestBullets(t *testing.T) {
	out := Bullets([]string{"one", "two"})
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.Equal(t, 2, strings.Count(out, "•"))
	assert.Empty(t, Bullets(nil))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Morning", capitalize("morning"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "X", capitalize("x"))
}

func TestSparkline_OneRunePerValue(t *testing.T) {
	out := sparkline([]int{1, 5, 10})
	// Styled output still carries exactly three block runes.
	count := 0
	for _, r := range out {
		for _, b := range sparkBlocks {
			if r == b {
				count++
				break
			}
		}
	}
	assert.Equal(t, 3, count)
}

func TestBreakStatusPill(t *testing.T) {
	assert.Contains(t, BreakStatusPill(domain.BreakActive), "active")
	assert.Contains(t, BreakStatusPill(domain.BreakCompleted), "completed")
	assert.Contains(t, BreakStatusPill(domain.BreakUpcoming), "upcoming")
	assert.Contains(t, BreakStatusPill(domain.BreakStatus("")), "upcoming")
}

func TestWrapText(t *testing.T) {
	lines := wrapText("a long description that should wrap neatly", 12)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 15)
	}
	assert.Nil(t, wrapText("", 10))
}

func TestRenderTable_PadsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Type"},
		[][]string{{"walk-13:00-1", "walk"}, {"a", "b"}},
	)
	assert.Contains(t, out, "walk-13:00-1")
	assert.Contains(t, out, "─")
	assert.Empty(t, RenderTable(nil, nil))
}
