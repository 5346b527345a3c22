package testutil

import (
	"database/sql"
	"testing"
)

// InsertClosedSession inserts a closed session row directly, bypassing
// the service layer, and returns its id.
func InsertClosedSession(t *testing.T, database *sql.DB, date string, start, stop float64) int64 {
	t.Helper()
	res, err := database.Exec(
		`INSERT INTO worksessions (date, start_time, stop_time) VALUES (?, ?, ?)`,
		date, start, stop,
	)
	if err != nil {
		t.Fatalf("failed to insert closed session: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read inserted id: %v", err)
	}
	return id
}

// InsertOpenSession inserts an open session row directly and returns
// its id.
func InsertOpenSession(t *testing.T, database *sql.DB, date string, start float64) int64 {
	t.Helper()
	res, err := database.Exec(
		`INSERT INTO worksessions (date, start_time) VALUES (?, ?)`,
		date, start,
	)
	if err != nil {
		t.Fatalf("failed to insert open session: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read inserted id: %v", err)
	}
	return id
}

// CountSessions returns the number of rows in the worksessions table.
func CountSessions(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM worksessions`).Scan(&n); err != nil {
		t.Fatalf("failed to count sessions: %v", err)
	}
	return n
}
