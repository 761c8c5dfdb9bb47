package cli

import (
	"github.com/charmbracelet/log"
	"github.com/lmoretti/respite/internal/cadence"
	"github.com/lmoretti/respite/internal/dashboard"
	"github.com/lmoretti/respite/internal/repository"
	"github.com/lmoretti/respite/internal/service"
	"github.com/lmoretti/respite/internal/session"
	"github.com/lmoretti/respite/internal/tracker"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Checkins service.CheckinService
	Breaks   service.BreakService
	Wellness service.WellnessService
	Tasks    service.TaskService
	Calendar service.CalendarService
	Music    service.MusicService
	Video    service.VideoService

	Tracker   *tracker.Tracker
	Dashboard *dashboard.Aggregator
	Cadence   cadence.Resolver
	Session   *session.Manager
	Journal   repository.JournalRepo
	Log       *log.Logger

	// Interactive reports whether stdout is a terminal. Forms and the break
	// TUI are only offered when it returns true.
	Interactive func() bool
}

// NewRootCmd creates the top-level "respite" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "respite",
		Short:        "Workplace wellness companion: check-ins, breaks, and stress insight",
		SilenceUsage: true,
	}

	root.AddCommand(
		newDashboardCmd(app),
		newCheckinCmd(app),
		newBreaksCmd(app),
		newMusicCmd(app),
		newVideoCmd(app),
		newTasksCmd(app),
		newCalendarCmd(app),
		newLogCmd(app),
		newAuthCmd(app),
		newSettingsCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.Interactive != nil && a.Interactive()
}
