package cli

import (
	"context"
	"fmt"

	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List upcoming calendar events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Calendar.Events(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCalendar(events))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "How many days ahead to include")

	return cmd
}
