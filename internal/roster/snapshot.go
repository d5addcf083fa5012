// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package roster defines the identified list items relist reconciles.
package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUnknownFormat is returned for snapshot files that are neither TOML
	// nor JSON.
	ErrUnknownFormat = errors.New("unknown snapshot format")

	// ErrDuplicateID is returned when a snapshot lists the same item ID
	// twice. A snapshot with duplicate IDs cannot be diffed, so it is
	// rejected at load time.
	ErrDuplicateID = errors.New("duplicate item id in snapshot")
)

// =============================================================================
// SNAPSHOT
// =============================================================================

// Format identifies a snapshot file format.
type Format int

const (
	// FormatTOML is a TOML snapshot file
	FormatTOML Format = iota
	// FormatJSON is a JSON snapshot file
	FormatJSON
)

// Snapshot is one ordered roster state as read from disk.
type Snapshot struct {
	// Title is an optional display name for the roster
	Title string `toml:"title" json:"title,omitempty"`

	// Items is the ordered item list
	Items []Item `toml:"items" json:"items"`

	// Path is the file the snapshot came from (empty when parsed from memory)
	Path string `toml:"-" json:"-"`

	// LoadedAt is when the snapshot was read
	LoadedAt time.Time `toml:"-" json:"-"`
}

// Load reads and parses the snapshot file at path. The format is chosen by
// file extension: .toml is TOML, .json is JSON.
func Load(path string) (*Snapshot, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snap, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	snap.Path = path
	return snap, nil
}

// Parse decodes snapshot data in the given format, assigns IDs to items that
// lack one, and validates that no ID occurs twice.
func Parse(data []byte, format Format) (*Snapshot, error) {
	var snap Snapshot
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to parse TOML snapshot: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to parse JSON snapshot: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	seen := make(map[string]int, len(snap.Items))
	for i := range snap.Items {
		if snap.Items[i].ID == "" {
			snap.Items[i].ID = uuid.NewString()
		}
		if snap.Items[i].Status == "" {
			snap.Items[i].Status = StatusOpen
		}
		if prev, ok := seen[snap.Items[i].ID]; ok {
			return nil, fmt.Errorf("items %d and %d share id %q: %w",
				prev, i, snap.Items[i].ID, ErrDuplicateID)
		}
		seen[snap.Items[i].ID] = i
	}

	snap.LoadedAt = time.Now()
	return &snap, nil
}

// formatForPath maps a file extension to a snapshot format.
func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
}
