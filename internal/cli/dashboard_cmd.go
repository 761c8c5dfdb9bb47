package cli

import (
	"context"
	"fmt"

	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show the wellness dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Dashboard.Load(context.Background())
			if err != nil {
				return fmt.Errorf("loading dashboard: %w", err)
			}
			fmt.Println(formatter.FormatDashboard(snap))
			return nil
		},
	}
}
