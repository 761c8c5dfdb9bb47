package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/lmoretti/respite/internal/domain"
	"github.com/spf13/cobra"
)

func newBreaksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "breaks",
		Aliases: []string{"break"},
		Short:   "Plan and take stress-matched breaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreaksList(app, false)
		},
	}

	cmd.AddCommand(
		newBreaksListCmd(app),
		newBreaksStartCmd(app),
		newBreaksCompleteCmd(app),
		newBreaksSkipCmd(app),
		newBreaksCurrentCmd(app),
		newBreaksContentCmd(app),
		newBreaksHistoryCmd(app),
	)

	return cmd
}

func newBreaksListCmd(app *App) *cobra.Command {
	var insert bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch today's recommended break schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreaksList(app, insert)
		},
	}

	cmd.Flags().BoolVar(&insert, "insert", false, "Also insert the breaks into the calendar")

	return cmd
}

func runBreaksList(app *App, insert bool) error {
	schedule, err := app.Breaks.Schedule(context.Background(), insert)
	if err != nil {
		return fmt.Errorf("fetching break schedule: %w", err)
	}
	app.Tracker.Reset(schedule.BreakPlan.RecommendedBreaks)
	fmt.Println(formatter.FormatSchedule(schedule, app.Tracker.StatusOf))
	return nil
}

func newBreaksStartCmd(app *App) *cobra.Command {
	var noTimer bool

	cmd := &cobra.Command{
		Use:   "start <break-id>",
		Short: "Start a break from the current schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			breakID := args[0]
			ctx := context.Background()

			// IDs only exist relative to a fetched schedule, so refresh it
			// before starting.
			schedule, err := app.Breaks.Schedule(ctx, false)
			if err != nil {
				return fmt.Errorf("fetching break schedule: %w", err)
			}
			app.Tracker.Reset(schedule.BreakPlan.RecommendedBreaks)

			ack, err := app.Tracker.Start(ctx, breakID)
			if err != nil {
				return err
			}

			rec, _ := app.Tracker.Recommendation(breakID)
			if app.interactive() && !noTimer {
				return runBreakSession(app, breakID, rec)
			}

			fmt.Println(formatter.StyleGreen.Render("▶ Break started: " + breakID))
			if ack.Reward != "" {
				fmt.Println(formatter.Dim(ack.Reward))
			}
			fmt.Println(formatter.Dim(fmt.Sprintf("Finish with `respite breaks complete %s`", breakID)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noTimer, "no-timer", false, "Start without the interactive countdown")

	return cmd
}

func newBreaksCompleteCmd(app *App) *cobra.Command {
	var feedback string

	cmd := &cobra.Command{
		Use:   "complete <break-id>",
		Short: "Mark the active break as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			breakID := args[0]
			ctx := context.Background()

			if err := reconcileActive(ctx, app, breakID); err != nil {
				return err
			}

			ack, err := app.Tracker.Complete(ctx, breakID, feedback)
			if err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("✓ Break completed"))
			if ack.Reward != "" {
				fmt.Println(formatter.Dim(ack.Reward))
			}
			journalBreak(app, breakID, feedback)
			return nil
		},
	}

	cmd.Flags().StringVar(&feedback, "feedback", "", "How the break felt")

	return cmd
}

func newBreaksSkipCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "skip <break-id>",
		Short: "Skip a recommended break",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			breakID := args[0]
			ctx := context.Background()

			// Best effort: an active break on the backend can be skipped too.
			_ = reconcileActive(ctx, app, breakID)

			if _, err := app.Tracker.Skip(ctx, breakID, reason); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Break skipped."))
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "user_skip", "Why the break was skipped")

	return cmd
}

// reconcileActive seeds the tracker with the backend's active break when the
// local process has no record of it.
func reconcileActive(ctx context.Context, app *App, breakID string) error {
	if app.Tracker.StatusOf(breakID) == domain.BreakActive {
		return nil
	}
	cur, err := app.Breaks.Current(ctx)
	if err != nil {
		return fmt.Errorf("checking current break: %w", err)
	}
	if !cur.Active || cur.BreakID != breakID {
		return fmt.Errorf("break %s is not active", breakID)
	}
	return app.Tracker.Adopt(breakID, domain.BreakRecommendation{
		BreakType:       cur.Type,
		DurationMinutes: cur.DurationMinutes,
		Reasoning:       cur.AIReason,
	})
}

func journalBreak(app *App, breakID, note string) {
	if app.Journal == nil {
		return
	}
	rec, _ := app.Tracker.Recommendation(breakID)
	entry := &domain.JournalEntry{
		ID:          uuid.New().String(),
		Kind:        domain.JournalBreak,
		BreakType:   rec.BreakType,
		BreakID:     breakID,
		DurationMin: rec.DurationMinutes,
		Note:        note,
		CreatedAt:   time.Now().UTC(),
	}
	if err := app.Journal.Create(context.Background(), entry); err != nil {
		app.Log.Warn("journaling break failed", "break_id", breakID, "error", err)
	}
}

func newBreaksCurrentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the break in progress, if any",
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := app.Breaks.Current(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCurrentBreak(cur))
			return nil
		},
	}
}

func newBreaksContentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "content <type>",
		Short: "Show the guided steps for a break type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := app.Breaks.Content(context.Background(), domain.BreakType(args[0]))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatBreakContent(content))
			return nil
		},
	}
}

func newBreaksHistoryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past breaks and completion stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.Breaks.History(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatBreakHistory(history))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to include")

	return cmd
}
