// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package roster defines the identified list items relist reconciles and
// loads them from snapshot files.
//
// A snapshot is a TOML or JSON file holding an ordered list of items. Each
// item carries a stable ID used as its identity when two snapshots are
// diffed; items without an ID get a generated one at load time.
//
// # Usage
//
//	snap, err := roster.Load("team.toml")
//	if err != nil { ... }
//	for _, item := range snap.Items { ... }
package roster
