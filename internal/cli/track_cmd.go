package cli

import (
	"context"
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stintdev/stint/internal/service"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, done, err := app.OpenTracker()
			if err != nil {
				return err
			}
			defer done()

			if err := tracker.Start(context.Background()); err != nil {
				// A rejected transition is a normal outcome, not a
				// failed invocation.
				if errors.Is(err, service.ErrSessionAlreadyOpen) {
					pterm.Warning.Println(err)
					return nil
				}
				return err
			}

			pterm.Success.Println("New work session started")
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "End the current work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, done, err := app.OpenTracker()
			if err != nil {
				return err
			}
			defer done()

			if err := tracker.Stop(context.Background()); err != nil {
				if errors.Is(err, service.ErrNoOpenSession) {
					pterm.Warning.Println(err)
					return nil
				}
				return err
			}

			pterm.Success.Println("Current session stopped")
			return nil
		},
	}
}

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the hours put in today",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, done, err := app.OpenTracker()
			if err != nil {
				return err
			}
			defer done()

			summary, err := tracker.HoursToday(context.Background())
			if err != nil {
				return err
			}

			pterm.Info.Println(summary)
			return nil
		},
	}
}
