package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stintdev/stint/internal/config"
	"github.com/stintdev/stint/internal/db"
)

// Default file names, placed next to the config file unless overridden.
const (
	defaultSchemaFile   = "schema.sql"
	defaultDatabaseFile = "worksessions.db"
)

func newInitCmd(app *App) *cobra.Command {
	var schemaPath, dbPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the stint config file and database",
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir := filepath.Dir(app.ConfigPath)
			if schemaPath == "" {
				schemaPath = filepath.Join(configDir, defaultSchemaFile)
			}
			if dbPath == "" {
				dbPath = filepath.Join(configDir, defaultDatabaseFile)
			}

			cfg := config.Config{SchemaPath: schemaPath, DatabasePath: dbPath}
			if err := config.Write(app.ConfigPath, cfg); err != nil {
				return fmt.Errorf("creating config file: %w", err)
			}

			// Lay down the default schema file when none exists yet,
			// leaving a hand-edited one alone.
			if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
				if err := os.MkdirAll(filepath.Dir(schemaPath), 0755); err != nil {
					return fmt.Errorf("creating schema directory: %w", err)
				}
				if err := os.WriteFile(schemaPath, []byte(db.DefaultSchema), 0644); err != nil {
					return fmt.Errorf("writing schema file: %w", err)
				}
			} else if err != nil {
				return fmt.Errorf("checking schema file: %w", err)
			}

			schema, err := os.ReadFile(schemaPath)
			if err != nil {
				return fmt.Errorf("reading schema file: %w", err)
			}

			database, err := db.OpenDB(dbPath)
			if err != nil {
				return fmt.Errorf("creating database: %w", err)
			}
			defer database.Close()

			if err := db.Provision(database, string(schema)); err != nil {
				return fmt.Errorf("creating database: %w", err)
			}

			pterm.Success.Printfln("The stint database is %s", dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema-path", "", "Location of the schema definition file")
	cmd.Flags().StringVar(&dbPath, "db-path", "", "Location of the session database")

	return cmd
}
