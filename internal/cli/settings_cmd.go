package cli

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/huh"
	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/lmoretti/respite/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or edit preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.Session.Preferences()
			if err != nil {
				return err
			}

			fmt.Println(formatter.Bold("Workday") + "  " +
				formatter.StyleFg.Render(prefs.WorkdayStart+" - "+prefs.WorkdayEnd))
			fmt.Println(onOffLine("Break reminders", prefs.BreakReminders))
			fmt.Println(onOffLine("Stress alerts", prefs.StressAlerts))
			if len(prefs.BreakTypes) > 0 {
				fmt.Println(formatter.Dim("Preferred breaks: ") + formatter.StyleFg.Render(fmt.Sprint(prefs.BreakTypes)))
			}
			return nil
		},
	}

	cmd.AddCommand(newSettingsEditCmd(app))

	return cmd
}

func onOffLine(name string, on bool) string {
	if on {
		return fmt.Sprintf("%s  %s", formatter.Bold(name), formatter.StyleGreen.Render("on"))
	}
	return fmt.Sprintf("%s  %s", formatter.Bold(name), formatter.Dim("off"))
}

var clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

func validateClock(s string) error {
	if !clockPattern.MatchString(s) {
		return fmt.Errorf("use HH:MM, e.g. 09:00")
	}
	return nil
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit preferences interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("settings edit needs an interactive terminal")
			}

			prefs, err := app.Session.Preferences()
			if err != nil {
				return err
			}

			breakOptions := make([]huh.Option[string], 0, len(domain.ValidBreakTypes))
			for _, bt := range domain.BreakTypeOrder {
				breakOptions = append(breakOptions, huh.NewOption(string(bt), string(bt)))
			}

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Workday start (HH:MM)").
						Value(&prefs.WorkdayStart).
						Validate(validateClock),
					huh.NewInput().
						Title("Workday end (HH:MM)").
						Value(&prefs.WorkdayEnd).
						Validate(validateClock),
					huh.NewMultiSelect[string]().
						Title("Preferred break types").
						Options(breakOptions...).
						Value(&prefs.BreakTypes),
					huh.NewConfirm().
						Title("Break reminders").
						Value(&prefs.BreakReminders),
					huh.NewConfirm().
						Title("Stress alerts").
						Value(&prefs.StressAlerts),
				),
			).WithTheme(respiteHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}
			if err := app.Session.SavePreferences(prefs); err != nil {
				return fmt.Errorf("saving preferences: %w", err)
			}
			markOnboardingStep(app, "preferences")
			fmt.Println(formatter.StyleGreen.Render("✓ Preferences saved"))
			return nil
		},
	}
}
