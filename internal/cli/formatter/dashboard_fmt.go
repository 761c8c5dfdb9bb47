package formatter

import (
	"fmt"
	"strings"

	"github.com/lmoretti/respite/internal/dashboard"
	"github.com/lmoretti/respite/internal/domain"
)

// FormatDashboard formats one dashboard snapshot into a styled CLI string.
func FormatDashboard(snap *dashboard.Snapshot) string {
	var b strings.Builder

	intel := snap.Analysis.StressIntelligence

	if next := snap.NextCheckin(); next != nil {
		prompt := fmt.Sprintf("%s check-in is due. Run `respite checkin %s`", capitalize(string(*next)), *next)
		b.WriteString(StyleYellow.Render("☀ "+prompt) + "\n\n")
	}

	score := fmt.Sprintf("%d/10", intel.StressScore)
	b.WriteString(fmt.Sprintf("%s  %s\n",
		StressStyle(intel.StressLevel).Bold(true).Render(score),
		StressIndicator(intel.StressLevel)))
	b.WriteString(ScaleBar(intel.StressScore, false) + "\n\n")

	rows := [][]string{
		{"Burnout risk", StyleFg.Render(intel.BurnoutRisk)},
		{"Mood", StyleFg.Render(intel.MoodState)},
		{"Energy forecast", StyleFg.Render(intel.EnergyForecast)},
		{"Calendar events", StyleFg.Render(fmt.Sprintf("%d", snap.CalendarEventCount))},
		{"Open tasks", StyleFg.Render(fmt.Sprintf("%d", snap.TaskCount))},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("%-16s", row[0])), row[1]))
	}

	if len(intel.KeyPatterns) > 0 {
		b.WriteString("\n" + Header("Patterns") + "\n")
		b.WriteString(Bullets(intel.KeyPatterns))
	}

	if len(intel.WellnessRecommendations) > 0 {
		b.WriteString("\n" + Header("Recommendations") + "\n")
		for _, rec := range intel.WellnessRecommendations {
			b.WriteString(fmt.Sprintf("  %s %s\n", priorityPill(rec.Priority), StyleFg.Render(rec.Action)))
			if rec.Reasoning != "" {
				b.WriteString("    " + Dim(rec.Reasoning) + "\n")
			}
		}
	}

	return RenderBox("Wellness", b.String())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func priorityPill(priority string) string {
	switch strings.ToLower(priority) {
	case "high", "urgent":
		return StyleRed.Render("[high]")
	case "medium":
		return StyleYellow.Render("[med] ")
	default:
		return StyleDim.Render("[low] ")
	}
}

// FormatCheckinStatus formats today's check-in completion state.
func FormatCheckinStatus(status *domain.CheckinStatus) string {
	var b strings.Builder
	b.WriteString(checkinLine("Morning", status.MorningCompleted))
	b.WriteString(checkinLine("Afternoon", status.AfternoonCompleted))
	b.WriteString(checkinLine("Evening", status.EveningCompleted))
	if status.NextCheckin != nil {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("Next due: %s", *status.NextCheckin)) + "\n")
	} else {
		b.WriteString("\n" + StyleGreen.Render("All caught up for now.") + "\n")
	}
	return RenderBox("Check-ins Today", b.String())
}

func checkinLine(label string, done bool) string {
	if done {
		return fmt.Sprintf("  %s %s\n", StyleGreen.Render("✓"), StyleFg.Render(label))
	}
	return fmt.Sprintf("  %s %s\n", StyleDim.Render("·"), StyleDim.Render(label))
}
