package db

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultSchema is the canonical session-table definition. "stint init"
// writes it out as the schema file when none exists yet, and the test
// harness provisions in-memory databases from it directly.
//
//go:embed schema.sql
var DefaultSchema string

// OpenDB opens a SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
// Sets WAL mode and enables foreign keys. The schema itself is
// provisioned separately (see Provision); opening never mutates it.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if path == ":memory:" {
		// A second pooled connection would see its own empty in-memory
		// database, so pin the pool to one connection.
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return db, nil
}

// Provision executes a schema definition against the database. The
// shipped schema uses IF NOT EXISTS throughout, so re-running it
// against an already provisioned database is harmless.
func Provision(db *sql.DB, schema string) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("provisioning schema: %w", err)
	}
	return nil
}
