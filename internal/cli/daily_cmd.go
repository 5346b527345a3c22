package cli

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newDailyCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show the hours put in every day",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, done, err := app.OpenTracker()
			if err != nil {
				return err
			}
			defer done()

			history, err := tracker.DailyHistory(context.Background())
			if err != nil {
				return err
			}
			if len(history) == 0 {
				pterm.Info.Println("No closed sessions recorded yet")
				return nil
			}

			interactive := app.IsInteractive != nil && app.IsInteractive()
			if plain || !interactive {
				for _, day := range history {
					fmt.Printf("%s\t%.2f\n", day.Date, day.Hours)
				}
				return nil
			}

			return renderDailyChart(history)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print date/hours rows instead of a chart")

	return cmd
}
