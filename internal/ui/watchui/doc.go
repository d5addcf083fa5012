// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package watchui provides the live watch screen for the relist TUI.

The screen observes a roster file through the watch package and keeps the
displayed list reconciled with it. Each time the file settles after a batch
of writes, the new snapshot is diffed against the one on screen and the
change set is replayed on the roster view as row operations, so unchanged
rows keep their place and touched rows light up briefly.

# Message Flow

	watcher fires -> FileChangedMsg -> LoadRosterCmd
	load succeeds -> RosterLoadedMsg -> reconcile -> ClearHighlightsCmd
	load fails    -> RosterErrorMsg  -> previous list stays on screen

When a revision journal is attached, every non-empty replay is also recorded
through RecordRevisionCmd.

# Keyboard

Arrow keys or j/k move the cursor, r forces a reload, ? toggles help and q
quits. Bindings live in KeyMap and are rendered by the bubbles help
component.
*/
package watchui
