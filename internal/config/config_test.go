package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	want := Config{
		SchemaPath:   filepath.Join(dir, "schema.sql"),
		DatabasePath: filepath.Join(dir, "worksessions.db"),
	}
	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want.SchemaPath, got.SchemaPath)
	assert.Equal(t, want.DatabasePath, got.DatabasePath)
}

func TestWrite_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "config.yaml")

	require.NoError(t, Write(path, Config{SchemaPath: "s", DatabasePath: "d"}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestLoad_MissingKeys(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "no_database.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema: /tmp/schema.sql\n"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "database")

	path = filepath.Join(dir, "no_schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: /tmp/sessions.db\n"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "schema")
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("STINT_CONFIG", "/custom/stint.yaml")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/stint.yaml", path)
}
