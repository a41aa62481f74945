// ABOUTME: Configuration for the stickies CLI
// ABOUTME: Handles XDG config paths, defaults, and the JSON config file

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds user preferences.
type Config struct {
	// Theme is the starting theme of the interactive board (light or dark).
	Theme string `json:"theme"`

	// SeedPath is a YAML list of notes to start the board with. Empty uses
	// the built-in sample notes.
	SeedPath string `json:"seed_path,omitempty"`

	// LogLevel is one of debug, info, warn, error (default: warn)
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme:    ThemeLight,
		LogLevel: "warn",
	}
}

// Dir returns the configuration directory path.
func Dir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "stickies")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.json")
}

// Load loads configuration from path, returns defaults if not found.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // Config path comes from the user
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to path.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Validate rejects values the CLI cannot act on.
func (c *Config) Validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("theme must be %q or %q, got %q", ThemeLight, ThemeDark, c.Theme)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Dark reports whether the board should start in the dark theme.
func (c *Config) Dark() bool {
	return c.Theme == ThemeDark
}
