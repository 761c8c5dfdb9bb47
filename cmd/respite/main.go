package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lmoretti/respite/internal/api"
	"github.com/lmoretti/respite/internal/cadence"
	"github.com/lmoretti/respite/internal/cli"
	"github.com/lmoretti/respite/internal/config"
	"github.com/lmoretti/respite/internal/dashboard"
	"github.com/lmoretti/respite/internal/db"
	"github.com/lmoretti/respite/internal/logger"
	"github.com/lmoretti/respite/internal/repository"
	"github.com/lmoretti/respite/internal/service"
	"github.com/lmoretti/respite/internal/session"
	"github.com/lmoretti/respite/internal/tracker"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	appLog, err := logger.New(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	// Open the local journal database.
	database, err := db.OpenDB(filepath.Join(cfg.DataDir, "respite.db"))
	if err != nil {
		return fmt.Errorf("opening journal database: %w", err)
	}
	defer database.Close()

	journalRepo := repository.NewSQLiteJournalRepo(database)

	// Wire services against the backend client.
	client := api.New(cfg.BaseURL, time.Duration(cfg.TimeoutMs)*time.Millisecond, appLog)
	checkinSvc := service.NewCheckinService(client, cfg.UserID, journalRepo, appLog)
	breakSvc := service.NewBreakService(client, cfg.UserID)
	wellnessSvc := service.NewWellnessService(client)
	taskSvc := service.NewTaskService(client)

	app := &cli.App{
		Checkins: checkinSvc,
		Breaks:   breakSvc,
		Wellness: wellnessSvc,
		Tasks:    taskSvc,
		Calendar: service.NewCalendarService(client),
		Music:    service.NewMusicService(client),
		Video:    service.NewVideoService(client),

		Tracker:   tracker.New(breakSvc, notify),
		Dashboard: dashboard.New(wellnessSvc, taskSvc, checkinSvc, appLog),
		Cadence:   cadence.NewResolver(cfg.UTCOffsetMin),
		Session:   session.NewManager(session.NewKeyringStore()),
		Journal:   journalRepo,
		Log:       appLog,
	}

	app.Interactive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// notify prints break completion messages; the tracker calls it outside any
// rendering context.
func notify(message string) {
	fmt.Println(message)
}
