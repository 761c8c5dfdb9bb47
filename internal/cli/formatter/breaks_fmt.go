package formatter

import (
	"fmt"
	"strings"

	"github.com/lmoretti/respite/internal/domain"
)

// FormatSchedule formats a fetched break schedule. statusOf maps a break ID
// to its local execution state; pass nil to show everything as upcoming.
func FormatSchedule(schedule *domain.BreakSchedule, statusOf func(id string) domain.BreakStatus) string {
	var b strings.Builder

	assess := schedule.StressAssessment
	b.WriteString(fmt.Sprintf("Stress %s  %s\n",
		StressStyle(assess.Level).Bold(true).Render(fmt.Sprintf("%d/10", assess.Score)),
		StressIndicator(assess.Level)))

	if schedule.BreakPlan.DailyStrategy != "" {
		b.WriteString(Dim(schedule.BreakPlan.DailyStrategy) + "\n")
	}
	b.WriteString("\n")

	recs := schedule.BreakPlan.RecommendedBreaks
	if len(recs) == 0 {
		b.WriteString(Dim("No breaks recommended right now.") + "\n")
		return RenderBox("Break Schedule", b.String())
	}

	rows := make([][]string, 0, len(recs))
	for i, rec := range recs {
		id := domain.BreakID(rec, i)
		status := domain.BreakUpcoming
		if statusOf != nil {
			status = statusOf(id)
		}
		rows = append(rows, []string{
			StyleDim.Render(id),
			StyleFg.Render(string(rec.BreakType)),
			StyleFg.Render(rec.TimeSlot),
			StyleFg.Render(fmt.Sprintf("%d min", rec.DurationMinutes)),
			BreakStatusPill(status),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "Type", "Slot", "Length", "Status"}, rows))

	for i, rec := range recs {
		if rec.Reasoning == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s %s\n", StyleBlue.Render(domain.BreakID(rec, i)), Dim(rec.Reasoning)))
		if rec.PreparationTip != "" {
			b.WriteString("  " + Dim("Tip: "+rec.PreparationTip) + "\n")
		}
	}

	if schedule.AutoInserted && len(schedule.InsertedBreaks) > 0 {
		inserted := 0
		for _, ins := range schedule.InsertedBreaks {
			if ins.Success {
				inserted++
			}
		}
		b.WriteString("\n" + StyleGreen.Render(fmt.Sprintf("✓ %d break(s) added to your calendar", inserted)) + "\n")
	}

	return RenderBox("Break Schedule", b.String())
}

// FormatCurrentBreak formats the server's view of the in-progress break.
func FormatCurrentBreak(cur *domain.CurrentBreak) string {
	if !cur.Active {
		return Dim("No break is in progress.")
	}

	var b strings.Builder
	b.WriteString(StyleYellow.Render("▶ "+cur.Title) + "\n\n")
	rows := [][]string{
		{"Break", StyleDim.Render(cur.BreakID)},
		{"Type", StyleFg.Render(string(cur.Type))},
		{"Length", StyleFg.Render(fmt.Sprintf("%d min", cur.DurationMinutes))},
		{"Elapsed", StyleFg.Render(FormatClock(cur.ElapsedSeconds))},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("%-8s", row[0])), row[1]))
	}
	if cur.AIReason != "" {
		b.WriteString("\n" + Dim(cur.AIReason) + "\n")
	}
	return RenderBox("Current Break", b.String())
}

// FormatBreakContent formats the guided steps for a break type.
func FormatBreakContent(content *domain.BreakContent) string {
	var b strings.Builder
	b.WriteString(Bold(content.Title) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%s total", FormatClock(content.TotalDuration))) + "\n\n")
	for i, step := range content.Steps {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			StyleBlue.Render(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(step.Text),
			Dim(FormatClock(step.Seconds))))
	}
	return RenderBox(string(content.Type), b.String())
}

// FormatBreakHistory formats past break records with completion stats.
func FormatBreakHistory(history *domain.BreakHistory) string {
	var b strings.Builder

	stats := history.Stats
	b.WriteString(fmt.Sprintf("%s of %s breaks completed over %d day(s)  %s\n\n",
		StyleGreen.Render(fmt.Sprintf("%d", stats.CompletedBreaks)),
		Bold(fmt.Sprintf("%d", stats.TotalBreaks)),
		stats.Days,
		Dim(fmt.Sprintf("(%.0f%%)", stats.CompletionRate*100))))

	if len(history.History) == 0 {
		b.WriteString(Dim("No breaks recorded yet.") + "\n")
		return RenderBox("Break History", b.String())
	}

	rows := make([][]string, 0, len(history.History))
	for _, rec := range history.History {
		done := StyleDim.Render("· skipped")
		if rec.Completed {
			done = StyleGreen.Render("✓ done")
		}
		rows = append(rows, []string{
			StyleFg.Render(string(rec.Type)),
			StyleFg.Render(fmt.Sprintf("%d min", rec.Duration)),
			done,
			Dim(rec.Timestamp),
		})
	}
	b.WriteString(RenderTable([]string{"Type", "Length", "Outcome", "When"}, rows))

	return RenderBox("Break History", b.String())
}
