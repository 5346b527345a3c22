package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stintdev/stint/internal/clock"
	"github.com/stintdev/stint/internal/db"
)

// NewTestDB creates an in-memory SQLite database with the session
// schema provisioned. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := db.Provision(database, db.DefaultSchema); err != nil {
		t.Fatalf("failed to provision test schema: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestClock returns a fake clock pinned to a fixed reference
// instant (a Monday morning).
func NewTestClock() *clock.Fake {
	return clock.NewFake(time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC))
}
