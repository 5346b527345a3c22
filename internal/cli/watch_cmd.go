package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stintdev/stint/internal/service"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the running session's elapsed time",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, done, err := app.OpenTracker()
			if err != nil {
				return err
			}
			defer done()

			rec, err := tracker.OpenSession(context.Background())
			if err != nil {
				if errors.Is(err, service.ErrNoOpenSession) {
					pterm.Info.Println("No session is running; start one with \"stint start\"")
					return nil
				}
				return err
			}

			elapsed := time.Duration((nowUnixSeconds() - rec.StartTime) * float64(time.Second))
			if elapsed < 0 {
				elapsed = 0
			}

			if _, err := tea.NewProgram(newWatchModel(elapsed)).Run(); err != nil {
				return fmt.Errorf("running watch view: %w", err)
			}
			return nil
		},
	}
}

func nowUnixSeconds() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
