// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watchui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/relist-tui/internal/history"
	"github.com/jeranaias/relist-tui/internal/roster"
	"github.com/jeranaias/relist-tui/internal/watch"
)

// =============================================================================
// MESSAGES
// =============================================================================

// FileChangedMsg reports that the watched file settled after a batch of
// writes.
type FileChangedMsg struct{}

// RosterLoadedMsg carries a freshly parsed snapshot.
type RosterLoadedMsg struct {
	Snapshot *roster.Snapshot
}

// RosterErrorMsg reports a failed load or parse. The previous list stays on
// screen.
type RosterErrorMsg struct {
	Err error
}

// RevisionRecordedMsg reports the outcome of journaling a replay.
type RevisionRecordedMsg struct {
	Err error
}

// ClearHighlightsMsg fires when the replay highlights should fade out.
type ClearHighlightsMsg struct{}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// highlightDuration is how long replay highlights stay on screen.
const highlightDuration = 900 * time.Millisecond

// LoadRosterCmd creates a command that loads and parses the roster file.
func LoadRosterCmd(path string) tea.Cmd {
	return func() tea.Msg {
		snap, err := roster.Load(path)
		if err != nil {
			return RosterErrorMsg{Err: err}
		}
		return RosterLoadedMsg{Snapshot: snap}
	}
}

// WaitForChangeCmd creates a command that blocks until the watcher reports a
// settled change. Re-issued after every FileChangedMsg.
func WaitForChangeCmd(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		return FileChangedMsg{}
	}
}

// RecordRevisionCmd creates a command that journals an applied replay.
func RecordRevisionCmd(journal *history.Journal, rev history.Revision) tea.Cmd {
	return func() tea.Msg {
		return RevisionRecordedMsg{Err: journal.Record(&rev)}
	}
}

// ClearHighlightsCmd schedules the highlight fade-out.
func ClearHighlightsCmd() tea.Cmd {
	return tea.Tick(highlightDuration, func(time.Time) tea.Msg {
		return ClearHighlightsMsg{}
	})
}
