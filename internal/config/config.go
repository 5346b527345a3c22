// Package config reads and writes the stint configuration file, a
// small human-editable YAML document naming the schema and database
// locations. The core store never touches this package; it receives
// resolved paths through main.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Keys in the stint config file.
const (
	keySchema   = "schema"
	keyDatabase = "database"
)

var (
	// ErrConfigMissing means no config file exists yet; "stint init"
	// creates it.
	ErrConfigMissing = errors.New("config file not found")

	// ErrDatabaseMissing means the configured database path does not
	// exist on disk.
	ErrDatabaseMissing = errors.New("database not found")
)

// Config holds the resolved collaborator paths.
type Config struct {
	SchemaPath   string
	DatabasePath string
}

// DefaultPath returns the standard config file location,
// ~/.config/stint/config.yaml, overridable with STINT_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv("STINT_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "stint", "config.yaml"), nil
}

// Load reads the config file at path.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigMissing)
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{
		SchemaPath:   v.GetString(keySchema),
		DatabasePath: v.GetString(keyDatabase),
	}
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("config file %s: missing %q key", path, keyDatabase)
	}
	if cfg.SchemaPath == "" {
		return nil, fmt.Errorf("config file %s: missing %q key", path, keySchema)
	}
	return cfg, nil
}

// Write persists the schema and database locations to path, creating
// parent directories as needed.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set(keySchema, cfg.SchemaPath)
	v.Set(keyDatabase, cfg.DatabasePath)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
