// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for relist.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file location (in order of precedence):
//   - ~/.relist/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/relist-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete relist configuration.
type Config struct {
	// RosterPath is the snapshot file watched when none is given on the
	// command line
	RosterPath string `toml:"roster_path"`

	// Watch configuration
	Watch WatchConfig `toml:"watch"`

	// History configuration
	History HistoryConfig `toml:"history"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// WatchConfig controls the file watcher.
type WatchConfig struct {
	// DebounceMs is how long writes must settle before reloading, in
	// milliseconds
	DebounceMs int `toml:"debounce_ms"`
}

// HistoryConfig controls the revision journal.
type HistoryConfig struct {
	// Enabled controls whether applied change sets are recorded
	Enabled bool `toml:"enabled"`

	// DatabasePath is where the journal database lives. Empty means
	// ~/.relist/history.db.
	DatabasePath string `toml:"database_path"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`

	// Animations enables the row highlight transitions on change replay
	Animations bool `toml:"animations"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Watch: WatchConfig{
			DebounceMs: 250,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		UI: UIConfig{
			Theme:      "auto",
			Animations: true,
		},
	}
}

// Debounce returns the watch debounce as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}

// HistoryPath returns the journal database path, defaulting under the config
// directory.
func (c *Config) HistoryPath() (string, error) {
	if c.History.DatabasePath != "" {
		return c.History.DatabasePath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Dir returns the relist configuration directory (~/.relist).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".relist"), nil
}

// Load reads ~/.relist/config.toml, falling back to defaults when the file
// does not exist, then applies environment overrides and validates.
func Load() (*Config, error) {
	cfg := Default()

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to ~/.relist/config.toml atomically, so a
// crash mid-save never leaves a corrupt config behind.
func Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir, err := Dir()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(filepath.Join(dir, "config.toml"), buf.Bytes(), 0644)
}

// ApplyEnvOverrides applies environment variable overrides:
//   - RELIST_ROSTER: overrides roster_path
//   - RELIST_THEME: overrides ui.theme
//   - RELIST_NO_HISTORY: set to "1" or "true" to disable the journal
//   - RELIST_NO_ANIMATIONS: set to "1" or "true" to disable row animations
func (c *Config) ApplyEnvOverrides() {
	if roster := os.Getenv("RELIST_ROSTER"); roster != "" {
		c.RosterPath = roster
	}
	if theme := os.Getenv("RELIST_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if v := os.Getenv("RELIST_NO_HISTORY"); v == "1" || v == "true" {
		c.History.Enabled = false
	}
	if v := os.Getenv("RELIST_NO_ANIMATIONS"); v == "1" || v == "true" {
		c.UI.Animations = false
	}
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Watch.DebounceMs < 0 {
		return errors.New("watch.debounce_ms cannot be negative")
	}
	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("ui.theme must be dark, light or auto, got %q", c.UI.Theme)
	}
	return nil
}
