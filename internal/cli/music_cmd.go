package cli

import (
	"context"
	"fmt"

	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMusicCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "music",
		Short: "Stress-matched music therapy via Spotify",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMusicTherapy(app, "")
		},
	}

	cmd.AddCommand(
		newMusicStatusCmd(app),
		newMusicLoginCmd(app),
		newMusicTherapyCmd(app),
		newMusicPlaylistCmd(app),
	)

	return cmd
}

func newMusicStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the Spotify connection state",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Music.Status(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatMusicAuthStatus(status))
			return nil
		},
	}
}

func newMusicLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Get the Spotify authorization link",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := app.Music.LoginURL(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.Bold("Open this link to connect Spotify:"))
			fmt.Println(formatter.StyleBlue.Render(url))
			return nil
		},
	}
}

func newMusicTherapyCmd(app *App) *cobra.Command {
	var mood string

	cmd := &cobra.Command{
		Use:   "therapy",
		Short: "Fetch tracks matched to your stress level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMusicTherapy(app, mood)
		},
	}

	cmd.Flags().StringVar(&mood, "mood", "", "Override the detected mood")

	return cmd
}

func runMusicTherapy(app *App, mood string) error {
	therapy, err := app.Music.Therapy(context.Background(), mood)
	if err != nil {
		return err
	}
	if therapy.NeedsAuth {
		fmt.Println(formatter.StyleYellow.Render("Spotify is not connected.") + " " +
			formatter.Dim("Run `respite music login` first."))
		return nil
	}
	fmt.Println(formatter.FormatMusicTherapy(therapy))
	return nil
}

func newMusicPlaylistCmd(app *App) *cobra.Command {
	var mood string

	cmd := &cobra.Command{
		Use:   "playlist",
		Short: "Create a therapy playlist in your Spotify account",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Music.CreatePlaylist(context.Background(), mood)
			if err != nil {
				return err
			}
			if result.NeedsAuth {
				fmt.Println(formatter.StyleYellow.Render("Spotify is not connected.") + " " +
					formatter.Dim("Run `respite music login` first."))
				return nil
			}
			fmt.Print(formatter.FormatPlaylist(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&mood, "mood", "", "Override the detected mood")

	return cmd
}
