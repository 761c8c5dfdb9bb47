package formatter

import (
	"fmt"
	"strings"

	"github.com/lmoretti/respite/internal/domain"
)

// FormatTasks formats the open-task list.
func FormatTasks(list *domain.TaskList) string {
	var b strings.Builder

	if len(list.Tasks) == 0 {
		b.WriteString(Dim("No open tasks.") + "\n")
		return RenderBox("Tasks", b.String())
	}

	rows := make([][]string, 0, len(list.Tasks))
	for _, task := range list.Tasks {
		rows = append(rows, []string{
			StyleFg.Render(orDash(task.Name)),
			Dim(orDash(task.DueDate)),
			taskPriority(task.Priority),
			Dim(orDash(task.Status)),
		})
	}
	b.WriteString(RenderTable([]string{"Task", "Due", "Priority", "Status"}, rows))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d task(s) total", list.Total)) + "\n")

	return RenderBox("Tasks", b.String())
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func taskPriority(p *string) string {
	if p == nil {
		return Dim("-")
	}
	switch strings.ToLower(*p) {
	case "high", "urgent":
		return StyleRed.Render(*p)
	case "medium":
		return StyleYellow.Render(*p)
	default:
		return StyleDim.Render(*p)
	}
}

// FormatCalendar formats today's calendar events.
func FormatCalendar(events *domain.CalendarEvents) string {
	var b strings.Builder

	if len(events.Events) == 0 {
		b.WriteString(Dim("No events today.") + "\n")
		return RenderBox("Calendar", b.String())
	}

	rows := make([][]string, 0, len(events.Events))
	for _, ev := range events.Events {
		loc := "-"
		if ev.Location != "" {
			loc = ev.Location
		}
		rows = append(rows, []string{
			Dim(ev.Start),
			Dim(ev.End),
			StyleFg.Render(ev.Summary),
			StyleDim.Render(loc),
		})
	}
	b.WriteString(RenderTable([]string{"Start", "End", "Event", "Where"}, rows))

	return RenderBox("Calendar", b.String())
}

// FormatJournal formats locally journaled activity, newest first.
func FormatJournal(entries []*domain.JournalEntry) string {
	var b strings.Builder

	if len(entries) == 0 {
		b.WriteString(Dim("Nothing journaled yet.") + "\n")
		return RenderBox("Journal", b.String())
	}

	for _, entry := range entries {
		when := Dim(entry.CreatedAt.Local().Format("Jan 2 15:04"))
		switch entry.Kind {
		case domain.JournalBreak:
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				when,
				StyleGreen.Render("break"),
				StyleFg.Render(string(entry.BreakType)),
				Dim(fmt.Sprintf("%d min", entry.DurationMin))))
		default:
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				when,
				StyleBlue.Render("check-in"),
				StyleFg.Render(string(entry.CheckinType)),
				Dim(fmt.Sprintf("mood %d  energy %d  stress %d", entry.Mood, entry.Energy, entry.Stress))))
		}
		if entry.Note != "" {
			b.WriteString("    " + Dim(entry.Note) + "\n")
		}
	}

	return RenderBox("Journal", b.String())
}
