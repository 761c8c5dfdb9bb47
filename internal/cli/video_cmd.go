package cli

import (
	"context"
	"fmt"

	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newVideoCmd(app *App) *cobra.Command {
	var mood string
	var noAI bool

	cmd := &cobra.Command{
		Use:   "video",
		Short: "Fetch therapeutic videos matched to your stress level",
		RunE: func(cmd *cobra.Command, args []string) error {
			therapy, err := app.Video.Therapy(context.Background(), mood, !noAI)
			if err != nil {
				return err
			}
			if therapy.NeedsAuth {
				fmt.Println(formatter.StyleYellow.Render("Video therapy needs account setup.") +
					" " + formatter.Dim(therapy.Error))
				return nil
			}
			fmt.Println(formatter.FormatVideoTherapy(therapy))
			return nil
		},
	}

	cmd.Flags().StringVar(&mood, "mood", "", "Override the detected mood")
	cmd.Flags().BoolVar(&noAI, "no-ai", false, "Skip AI curation and use category defaults")

	return cmd
}
