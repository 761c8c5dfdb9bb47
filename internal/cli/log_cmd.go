package cli

import (
	"context"
	"fmt"

	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/lmoretti/respite/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var days int
	var kind string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show locally journaled check-ins and breaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				entries []*domain.JournalEntry
				err     error
			)
			switch kind {
			case "":
				entries, err = app.Journal.ListRecent(ctx, days)
			case string(domain.JournalCheckin), string(domain.JournalBreak):
				entries, err = app.Journal.ListRecentByKind(ctx, domain.JournalKind(kind), days)
			default:
				return fmt.Errorf("unknown kind %q (want checkin or break)", kind)
			}
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatJournal(entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to include")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by entry kind (checkin or break)")

	return cmd
}
