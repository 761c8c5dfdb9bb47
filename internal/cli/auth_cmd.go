package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/lmoretti/respite/internal/session"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored account session",
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthLogoutCmd(app),
		newAuthWhoamiCmd(app),
	)

	return cmd
}

func newAuthLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store account details in the system keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("login needs an interactive terminal")
			}

			var user session.User
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("User ID").
						Value(&user.ID).
						Validate(required("user ID")),
					huh.NewInput().
						Title("Email").
						Value(&user.Email).
						Validate(required("email")),
					huh.NewInput().
						Title("Name").
						Value(&user.Name),
					huh.NewInput().
						Title("Access token").
						EchoMode(huh.EchoModePassword).
						Value(&user.Token),
				),
			).WithTheme(respiteHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}
			if err := app.Session.SaveUser(&user); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}
			markOnboardingStep(app, "account")
			fmt.Println(formatter.StyleGreen.Render("✓ Signed in as " + user.Email))
			return nil
		},
	}
}

// markOnboardingStep records setup progress; failures are not fatal.
func markOnboardingStep(app *App, step string) {
	onboarding, err := app.Session.Onboarding()
	if err != nil {
		app.Log.Warn("reading onboarding state failed", "error", err)
		return
	}
	for _, done := range onboarding.CompletedSteps {
		if done == step {
			return
		}
	}
	onboarding.CompletedSteps = append(onboarding.CompletedSteps, step)
	onboarding.CurrentStep = len(onboarding.CompletedSteps)
	onboarding.Completed = len(onboarding.CompletedSteps) >= 2
	if err := app.Session.SaveOnboarding(onboarding); err != nil {
		app.Log.Warn("saving onboarding state failed", "error", err)
	}
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func newAuthLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.ClearUser(); err != nil {
				return fmt.Errorf("clearing session: %w", err)
			}
			fmt.Println(formatter.Dim("Signed out."))
			return nil
		},
	}
}

func newAuthWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Session.User()
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					fmt.Println(formatter.Dim("Not signed in. Run `respite auth login`."))
					return nil
				}
				return err
			}

			fmt.Println(formatter.Bold(user.Name) + " " + formatter.Dim("<"+user.Email+">"))
			fmt.Println(connectionLine("Calendar", user.HasCalendar))
			fmt.Println(connectionLine("Notion", user.HasNotion))
			fmt.Println(connectionLine("Spotify", user.HasSpotify))
			return nil
		},
	}
}

func connectionLine(name string, connected bool) string {
	if connected {
		return fmt.Sprintf("  %s %s", formatter.StyleGreen.Render("✓"), name)
	}
	return fmt.Sprintf("  %s %s", formatter.StyleDim.Render("·"), formatter.Dim(name+" not connected"))
}
