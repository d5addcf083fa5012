// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch observes a roster snapshot file and reports changes.
//
// The watcher is debounced: editors typically emit several events per save
// (and some replace the file entirely), so a change is only reported once
// writes have settled for the configured window. Notifications are delivered
// on a buffered channel; consumers that are busy see at most one queued
// notification and reload once.
//
// # Usage
//
//	w, err := watch.New("team.toml", 250*time.Millisecond)
//	if err != nil { ... }
//	defer w.Close()
//	if err := w.Watch(); err != nil { ... }
//	for range w.Changed() {
//		// reload the roster
//	}
package watch
