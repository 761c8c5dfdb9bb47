package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/lmoretti/respite/internal/domain"
)

// scaleInput returns a huh.Input for a 1-10 self-report scale.
func scaleInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("5").
		Value(value).
		Validate(validateScale)
}

func validateScale(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a number from 1 to 10")
	}
	if !domain.InScale(n) {
		return fmt.Errorf("must be between 1 and 10")
	}
	return nil
}

// mustAtoi converts a scale field already accepted by validateScale.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func runMorningForm(out *domain.MorningCheckin) error {
	var mood, energy, sleep, stress, notes, goals string

	form := huh.NewForm(
		huh.NewGroup(
			scaleInput("Mood (1-10)", &mood),
			scaleInput("Energy (1-10)", &energy),
			scaleInput("Sleep quality (1-10)", &sleep),
			scaleInput("Stress (1-10)", &stress),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Goals for today (one per line)").
				Value(&goals),
			huh.NewText().
				Title("Notes (optional)").
				Value(&notes),
		),
	).WithTheme(respiteHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	out.Mood = mustAtoi(mood)
	out.Energy = mustAtoi(energy)
	out.SleepQuality = mustAtoi(sleep)
	out.Stress = mustAtoi(stress)
	out.Notes = notes
	out.Goals = domain.SplitLines(goals)
	return nil
}

func runAfternoonForm(out *domain.AfternoonCheckin) error {
	var mood, energy, stress, focus, notes string

	form := huh.NewForm(
		huh.NewGroup(
			scaleInput("Mood (1-10)", &mood),
			scaleInput("Energy (1-10)", &energy),
			scaleInput("Stress (1-10)", &stress),
			scaleInput("Focus (1-10)", &focus),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Notes (optional)").
				Value(&notes),
		),
	).WithTheme(respiteHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	out.Mood = mustAtoi(mood)
	out.Energy = mustAtoi(energy)
	out.Stress = mustAtoi(stress)
	out.Focus = mustAtoi(focus)
	out.Notes = notes
	return nil
}

func runEveningForm(out *domain.EveningCheckin) error {
	var mood, energy, stress, productivity, notes, gratitude string
	var goalsAchieved bool

	form := huh.NewForm(
		huh.NewGroup(
			scaleInput("Mood (1-10)", &mood),
			scaleInput("Energy (1-10)", &energy),
			scaleInput("Stress (1-10)", &stress),
			scaleInput("Productivity (1-10)", &productivity),
		),
		huh.NewGroup(
			huh.NewText().
				Title("What are you grateful for? (one per line)").
				Value(&gratitude),
			huh.NewConfirm().
				Title("Did you achieve today's goals?").
				Value(&goalsAchieved),
			huh.NewText().
				Title("Notes (optional)").
				Value(&notes),
		),
	).WithTheme(respiteHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	out.Mood = mustAtoi(mood)
	out.Energy = mustAtoi(energy)
	out.Stress = mustAtoi(stress)
	out.Productivity = mustAtoi(productivity)
	out.Notes = notes
	out.Gratitude = domain.SplitLines(gratitude)
	out.GoalsAchieved = goalsAchieved
	return nil
}
