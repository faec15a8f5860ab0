// Package config loads pyflags tool configuration from
// <workspace>/.pyflags/config.yaml. All fields have working defaults; the
// file only needs to exist when something is overridden.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all pyflags configuration.
type Config struct {
	// SettingsPath overrides where the workspace settings file lives.
	// Relative paths are resolved against the workspace.
	SettingsPath string `yaml:"settings_path"`

	// History configures the snapshot journal.
	History HistoryConfig `yaml:"history"`

	// Theme selects the UI palette: auto, light or dark.
	Theme string `yaml:"theme"`

	// Logging configures the zap logger.
	Logging LoggingConfig `yaml:"logging"`
}

// HistoryConfig configures the snapshot journal.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
	// Keep is how many snapshots to retain; older ones are pruned on save.
	Keep int `yaml:"keep"`
}

// LoggingConfig configures logging output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		SettingsPath: filepath.Join(".pyflags", "settings.json"),
		History: HistoryConfig{
			Enabled: true,
			Keep:    50,
		},
		Theme: "auto",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration for the workspace. A missing file yields defaults.
func Load(workspace string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(workspace, ".pyflags", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks enum fields and value ranges.
func (c *Config) Validate() error {
	switch c.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("theme must be auto, light or dark, got %q", c.Theme)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.History.Keep < 0 {
		return fmt.Errorf("history keep must be non-negative, got %d", c.History.Keep)
	}
	if c.SettingsPath == "" {
		return fmt.Errorf("settings_path must not be empty")
	}
	return nil
}

// ResolveSettingsPath returns the absolute settings file path for the
// workspace, honoring an override in the config.
func (c *Config) ResolveSettingsPath(workspace string) string {
	if filepath.IsAbs(c.SettingsPath) {
		return c.SettingsPath
	}
	return filepath.Join(workspace, c.SettingsPath)
}
