package cli

import (
	"context"
	"fmt"

	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/lmoretti/respite/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckinCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Submit and review daily check-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: pick the cadence that is due right now.
			ctx := context.Background()
			status, err := app.Checkins.Status(ctx)
			if err != nil {
				app.Log.Warn("check-in status unavailable, falling back to local clock", "error", err)
				status = nil
			}
			next := app.Cadence.NextDue(status)
			if next == nil {
				fmt.Println(formatter.StyleGreen.Render("All check-ins done for today."))
				return nil
			}
			return runCheckin(app, *next)
		},
	}

	cmd.AddCommand(
		newCheckinSubmitCmd(app, domain.CheckinMorning),
		newCheckinSubmitCmd(app, domain.CheckinAfternoon),
		newCheckinSubmitCmd(app, domain.CheckinEvening),
		newCheckinStatusCmd(app),
		newCheckinHistoryCmd(app),
		newCheckinAnalyticsCmd(app),
	)

	return cmd
}

func newCheckinSubmitCmd(app *App, ct domain.CheckinType) *cobra.Command {
	return &cobra.Command{
		Use:   string(ct),
		Short: fmt.Sprintf("Submit the %s check-in", ct),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckin(app, ct)
		},
	}
}

func runCheckin(app *App, ct domain.CheckinType) error {
	if !app.interactive() {
		return fmt.Errorf("the %s check-in needs an interactive terminal", ct)
	}

	ctx := context.Background()
	var (
		ack *domain.CheckinAck
		err error
	)
	switch ct {
	case domain.CheckinMorning:
		var c domain.MorningCheckin
		if err = runMorningForm(&c); err != nil {
			return err
		}
		ack, err = app.Checkins.SubmitMorning(ctx, c)
	case domain.CheckinAfternoon:
		var c domain.AfternoonCheckin
		if err = runAfternoonForm(&c); err != nil {
			return err
		}
		ack, err = app.Checkins.SubmitAfternoon(ctx, c)
	case domain.CheckinEvening:
		var c domain.EveningCheckin
		if err = runEveningForm(&c); err != nil {
			return err
		}
		ack, err = app.Checkins.SubmitEvening(ctx, c)
	default:
		return fmt.Errorf("unknown check-in type %q", ct)
	}
	if err != nil {
		return fmt.Errorf("submitting %s check-in: %w", ct, err)
	}

	fmt.Print(formatter.FormatCheckinAck(ack))
	return nil
}

func newCheckinStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's check-in completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Checkins.Status(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCheckinStatus(status))
			return nil
		},
	}
}

func newCheckinHistoryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past check-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.Checkins.History(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCheckinHistory(history))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to include")

	return cmd
}

func newCheckinAnalyticsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show check-in averages and the mood trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			analytics, err := app.Checkins.Analytics(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatAnalytics(analytics))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to include")

	return cmd
}
