package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/lmoretti/respite/internal/domain"
	"github.com/lmoretti/respite/internal/tracker"
)

// runBreakSession runs the interactive countdown for a break that was just
// started. When the timer expires, or the user presses c, the break is
// completed through the tracker; pressing s skips it instead.
func runBreakSession(app *App, breakID string, rec domain.BreakRecommendation) error {
	content, err := app.Breaks.Content(context.Background(), rec.BreakType)
	if err != nil {
		// Guided steps are an enhancement, the timer works without them.
		app.Log.Debug("break content unavailable", "type", rec.BreakType, "error", err)
		content = nil
	}

	total := rec.DurationMinutes * 60
	model := breakSessionModel{
		breakID:   breakID,
		rec:       rec,
		content:   content,
		total:     total,
		remaining: total,
		keys:      newSessionKeyMap(),
	}

	program := tea.NewProgram(model)

	countdown := tracker.StartCountdown(
		time.Duration(total)*time.Second,
		func(remaining time.Duration) {
			program.Send(sessionTickMsg{remaining: int(remaining / time.Second)})
		},
		func() {
			program.Send(sessionDoneMsg{})
		},
	)
	defer countdown.Stop()

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running break session: %w", err)
	}
	countdown.Stop()

	session, ok := final.(breakSessionModel)
	if !ok {
		return nil
	}

	ctx := context.Background()
	switch session.outcome {
	case outcomeComplete:
		ack, err := app.Tracker.Complete(ctx, breakID, session.feedback)
		if err != nil {
			return err
		}
		fmt.Println(formatter.StyleGreen.Render("✓ Break completed"))
		if ack.Reward != "" {
			fmt.Println(formatter.Dim(ack.Reward))
		}
		journalBreak(app, breakID, session.feedback)
	case outcomeSkip:
		if _, err := app.Tracker.Skip(ctx, breakID, "user_skip"); err != nil {
			return err
		}
		fmt.Println(formatter.Dim("Break skipped."))
	default:
		fmt.Println(formatter.Dim(fmt.Sprintf(
			"Break still running. Finish with `respite breaks complete %s`", breakID)))
	}
	return nil
}

type sessionOutcome int

const (
	outcomeNone sessionOutcome = iota
	outcomeComplete
	outcomeSkip
)

type sessionKeyMap struct {
	Complete key.Binding
	Skip     key.Binding
	Quit     key.Binding
}

func newSessionKeyMap() sessionKeyMap {
	return sessionKeyMap{
		Complete: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "complete now"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "leave running"),
		),
	}
}

// sessionTickMsg carries the countdown's remaining whole seconds.
type sessionTickMsg struct {
	remaining int
}

// sessionDoneMsg signals the countdown reached zero.
type sessionDoneMsg struct{}

type breakSessionModel struct {
	breakID   string
	rec       domain.BreakRecommendation
	content   *domain.BreakContent
	total     int
	remaining int
	outcome   sessionOutcome
	feedback  string
	keys      sessionKeyMap
}

func (m breakSessionModel) Init() tea.Cmd {
	return nil
}

func (m breakSessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionTickMsg:
		m.remaining = msg.remaining
		return m, nil

	case sessionDoneMsg:
		m.remaining = 0
		m.outcome = outcomeComplete
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Complete):
			m.outcome = outcomeComplete
			return m, tea.Quit
		case key.Matches(msg, m.keys.Skip):
			m.outcome = outcomeSkip
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.outcome = outcomeNone
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m breakSessionModel) View() string {
	title := string(m.rec.BreakType)
	if m.content != nil && m.content.Title != "" {
		title = m.content.Title
	}

	clock := lipgloss.NewStyle().
		Foreground(formatter.ColorHeader).
		Bold(true).
		Render(formatter.FormatClock(m.remaining))

	lines := []string{
		formatter.Bold(title),
		"",
		clock,
		"",
	}

	if step := m.currentStep(); step != "" {
		lines = append(lines, formatter.StyleFg.Render(step), "")
	}

	lines = append(lines, formatter.Dim("c complete · s skip · q leave running"))

	return formatter.RenderBox("On a Break", lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// currentStep maps elapsed time onto the guided content steps.
func (m breakSessionModel) currentStep() string {
	if m.content == nil || len(m.content.Steps) == 0 {
		return m.rec.PreparationTip
	}
	elapsed := m.total - m.remaining
	for _, step := range m.content.Steps {
		if elapsed < step.Seconds {
			return step.Text
		}
		elapsed -= step.Seconds
	}
	return m.content.Steps[len(m.content.Steps)-1].Text
}
