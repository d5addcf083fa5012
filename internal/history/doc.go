// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists a journal of applied roster reconciliations.
//
// Each time the watch TUI (or the diff command with recording enabled)
// applies a change set, a Revision row is appended to a SQLite database:
// timestamp, snapshot source, resulting item count and the four change
// counts. The `relist history` command reads it back, newest first.
package history
