package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sessions.db")

	database, err := OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, database.Ping())
}

func TestProvision_CreatesSessionTable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Provision(database, DefaultSchema))

	_, err = database.Exec(`INSERT INTO worksessions (date, start_time) VALUES ('09-03-2026', 0)`)
	assert.NoError(t, err)
}

func TestProvision_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Provision(database, DefaultSchema))

	_, err = database.Exec(`INSERT INTO worksessions (date, start_time) VALUES ('09-03-2026', 0)`)
	require.NoError(t, err)

	// Re-provisioning must not drop existing rows.
	require.NoError(t, Provision(database, DefaultSchema))

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM worksessions`).Scan(&n))
	assert.Equal(t, 1, n)
}
