// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watchui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/relist-tui/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.helpView.Width = msg.Width
		m.rosterView.SetSize(msg.Width, m.listHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FileChangedMsg:
		if m.paused {
			// Stay armed but skip the reload until the watch resumes.
			return m, WaitForChangeCmd(m.watcher)
		}
		m.loading = true
		m.statusBar.SetStatus(components.StatusReloading)
		// Re-arm the wait before loading so rapid saves aren't missed.
		return m, tea.Batch(
			WaitForChangeCmd(m.watcher),
			LoadRosterCmd(m.path),
			m.spin.Tick,
		)

	case RosterLoadedMsg:
		m.loading = false
		m.lastErr = nil
		cmds, err := m.reconcile(msg.Snapshot)
		if err != nil {
			m.lastErr = err
			m.statusBar.SetStatus(components.StatusError)
			return m, nil
		}
		return m, tea.Batch(cmds...)

	case RosterErrorMsg:
		// Keep showing the last good list; surface the error in the footer.
		m.loading = false
		m.lastErr = msg.Err
		m.statusBar.SetStatus(components.StatusError)
		return m, nil

	case RevisionRecordedMsg:
		if msg.Err != nil {
			m.lastErr = msg.Err
		}
		return m, nil

	case ClearHighlightsMsg:
		m.rosterView.ClearHighlights()
		if m.lastErr == nil && !m.paused {
			m.statusBar.SetStatus(components.StatusWatching)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Up):
		m.rosterView.CursorUp()
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.rosterView.CursorDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Reload):
		m.loading = true
		m.statusBar.SetStatus(components.StatusReloading)
		return m, tea.Batch(LoadRosterCmd(m.path), m.spin.Tick)

	case key.Matches(msg, m.keyMap.Pause):
		m.paused = !m.paused
		if m.paused {
			m.statusBar.SetStatus(components.StatusPaused)
			return m, nil
		}
		// Resuming reloads immediately to catch changes made while paused.
		m.loading = true
		m.statusBar.SetStatus(components.StatusReloading)
		return m, tea.Batch(LoadRosterCmd(m.path), m.spin.Tick)

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		m.helpView.ShowAll = m.showHelp
		m.rosterView.SetSize(m.width, m.listHeight())
		return m, nil
	}

	return m, nil
}
