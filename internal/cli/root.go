package cli

import (
	"github.com/spf13/cobra"
	"github.com/stintdev/stint/internal/service"
)

// App holds the wiring CLI commands need. The tracker is resolved
// lazily so that "stint init" can run before any config or database
// exists, and so each invocation opens and releases the database
// within its own scope.
type App struct {
	// ConfigPath is the resolved location of the stint config file.
	ConfigPath string

	// OpenTracker resolves the config file, opens the database, and
	// returns a ready TrackerService plus a cleanup func that closes
	// the database.
	OpenTracker func() (service.TrackerService, func(), error)

	// IsInteractive reports whether stdout is attached to a terminal;
	// the daily chart falls back to plain rows when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "stint" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "stint",
		Short:         "Personal work-session timer",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolP("version", "V", false, "Show the application's version and exit")

	root.AddCommand(
		newInitCmd(app),
		newStartCmd(app),
		newStopCmd(app),
		newTodayCmd(app),
		newDailyCmd(app),
		newWatchCmd(app),
	)

	return root
}
