// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package roster defines the identified list items relist reconciles.
package roster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlSnapshot = `
title = "launch checklist"

[[items]]
id = "dns"
title = "Cut over DNS"
status = "active"
priority = 1

[[items]]
id = "backup"
title = "Verify backups"
status = "done"

[[items]]
title = "Announce in channel"
`

func TestParse_TOML(t *testing.T) {
	snap, err := Parse([]byte(tomlSnapshot), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "launch checklist", snap.Title)
	require.Len(t, snap.Items, 3)

	assert.Equal(t, "dns", snap.Items[0].ID)
	assert.Equal(t, StatusActive, snap.Items[0].Status)
	assert.Equal(t, 1, snap.Items[0].Priority)

	// Missing status defaults to open; missing ID gets generated.
	assert.Equal(t, StatusOpen, snap.Items[2].Status)
	assert.NotEmpty(t, snap.Items[2].ID)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"items": [
		{"id": "a", "title": "Alpha", "status": "open"},
		{"id": "b", "title": "Beta", "status": "blocked", "note": "waiting on a"}
	]}`)

	snap, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, snap.Items, 2)
	assert.Equal(t, StatusBlocked, snap.Items[1].Status)
	assert.Equal(t, "waiting on a", snap.Items[1].Note)
}

func TestParse_DuplicateID(t *testing.T) {
	data := []byte(`{"items": [{"id": "a", "title": "one"}, {"id": "a", "title": "two"}]}`)

	snap, err := Parse(data, FormatJSON)
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Nil(t, snap)
}

func TestLoad_FormatByExtension(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "roster.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlSnapshot), 0644))

	snap, err := Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, tomlPath, snap.Path)
	assert.Len(t, snap.Items, 3)

	_, err = Load(filepath.Join(dir, "roster.yaml"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestItem_Equal(t *testing.T) {
	base := Item{ID: "a", Title: "Alpha", Status: StatusOpen, Priority: 2}

	assert.True(t, base.Equal(Item{ID: "other", Title: "Alpha", Status: StatusOpen, Priority: 2}),
		"Equal must ignore identity")
	assert.False(t, base.Equal(Item{ID: "a", Title: "Alpha", Status: StatusDone, Priority: 2}))
	assert.False(t, base.Equal(Item{ID: "a", Title: "Alpha", Status: StatusOpen, Priority: 3}))
}
