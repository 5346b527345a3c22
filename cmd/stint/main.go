package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/stintdev/stint/internal/cli"
	"github.com/stintdev/stint/internal/clock"
	"github.com/stintdev/stint/internal/config"
	"github.com/stintdev/stint/internal/db"
	"github.com/stintdev/stint/internal/repository"
	"github.com/stintdev/stint/internal/service"
)

const version = "0.2.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath, err := config.DefaultPath()
	if err != nil {
		return err
	}

	app := &cli.App{
		ConfigPath:  configPath,
		OpenTracker: openTracker(configPath),
	}

	// Detect interactive terminal for chart rendering.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app, version)
	return rootCmd.Execute()
}

// openTracker wires config -> database -> repository -> service for a
// single command invocation. The returned cleanup closes the database.
func openTracker(configPath string) func() (service.TrackerService, func(), error) {
	return func() (service.TrackerService, func(), error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			if errors.Is(err, config.ErrConfigMissing) {
				return nil, nil, fmt.Errorf(`%w, please run "stint init"`, config.ErrConfigMissing)
			}
			return nil, nil, err
		}

		if _, err := os.Stat(cfg.DatabasePath); err != nil {
			if os.IsNotExist(err) {
				return nil, nil, fmt.Errorf(`%w at %s, please run "stint init"`, config.ErrDatabaseMissing, cfg.DatabasePath)
			}
			return nil, nil, fmt.Errorf("checking database path: %w", err)
		}

		database, err := db.OpenDB(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}

		var observers []service.UseCaseObserver
		if os.Getenv("STINT_LOG") == "1" {
			observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
		}

		sessions := repository.NewSQLiteSessionRepo(database, clock.System())
		tracker := service.NewTrackerService(sessions, observers...)
		return tracker, func() { database.Close() }, nil
	}
}
