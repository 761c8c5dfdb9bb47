package formatter

import (
	"fmt"
	"strings"

	"github.com/lmoretti/respite/internal/domain"
)

// FormatCheckinAck formats the acknowledgment printed after a submission.
func FormatCheckinAck(ack *domain.CheckinAck) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render(fmt.Sprintf("✓ %s check-in saved", capitalize(string(ack.Checkin.Type)))) + "\n")
	if ack.Checkin.Timestamp != "" {
		b.WriteString(Dim(ack.Checkin.Timestamp) + "\n")
	}
	return b.String()
}

// FormatCheckinHistory formats past check-ins grouped by cadence.
func FormatCheckinHistory(history *domain.CheckinHistory) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s morning  %s afternoon  %s evening\n\n",
		Bold(fmt.Sprintf("%d", history.TotalMorning)),
		Bold(fmt.Sprintf("%d", history.TotalAfternoon)),
		Bold(fmt.Sprintf("%d", history.TotalEvening))))

	order := []domain.CheckinType{domain.CheckinMorning, domain.CheckinAfternoon, domain.CheckinEvening}
	empty := true
	for _, ct := range order {
		entries := history.History[ct]
		if len(entries) == 0 {
			continue
		}
		empty = false
		b.WriteString(Header(string(ct)) + "\n")
		for _, entry := range entries {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim(entry.Timestamp), checkinSummary(entry)))
		}
		b.WriteString("\n")
	}
	if empty {
		b.WriteString(Dim("No check-ins recorded yet.") + "\n")
	}

	return RenderBox("Check-in History", b.String())
}

// checkinSummary pulls the common scale fields out of the free-form data map.
func checkinSummary(entry domain.SavedCheckin) string {
	parts := make([]string, 0, 3)
	for _, field := range []string{"mood", "energy", "stress"} {
		if v, ok := entry.Data[field]; ok {
			if n, ok := v.(float64); ok {
				parts = append(parts, fmt.Sprintf("%s %d", field, int(n)))
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return StyleFg.Render(strings.Join(parts, "  "))
}

// FormatAnalytics formats rolling check-in averages and the mood trend.
func FormatAnalytics(analytics *domain.CheckinAnalytics) string {
	stats := analytics.Analytics
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  over %d check-in(s)\n",
		TrendIndicator(stats.Trend), stats.TotalCheckins))
	if stats.CheckinStreak > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("🔥 %d-day streak", stats.CheckinStreak)) + "\n")
	}
	b.WriteString("\n")

	rows := [][]string{
		{"Mood", ScaleBar(int(stats.AverageMood+0.5), true)},
		{"Energy", ScaleBar(int(stats.AverageEnergy+0.5), true)},
		{"Stress", ScaleBar(int(stats.AverageStress+0.5), false)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("%-8s", row[0])), row[1]))
	}

	if len(stats.MoodHistory) > 1 {
		b.WriteString("\n" + Dim("Mood ") + sparkline(stats.MoodHistory) + "\n")
	}

	return RenderBox("Check-in Analytics", b.String())
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders 1-10 values as a row of block characters.
func sparkline(values []int) string {
	var b strings.Builder
	for _, v := range values {
		if v < 1 {
			v = 1
		}
		if v > 10 {
			v = 10
		}
		idx := (v - 1) * (len(sparkBlocks) - 1) / 9
		b.WriteRune(sparkBlocks[idx])
	}
	return StyleBlue.Render(b.String())
}
