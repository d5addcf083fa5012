// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watchui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// VIEW
// =============================================================================

// chromeLines is the vertical space taken by the header and the footer.
const chromeLines = 3

// View renders the watch screen: header, roster list, optional error line,
// help and the status bar.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.header.View())
	b.WriteString("\n")

	if m.loading && m.snapshot == nil {
		b.WriteString(m.theme.NoticeText.Render(m.spin.View() + " Loading roster..."))
	} else {
		b.WriteString(m.rosterView.View())
	}
	b.WriteString("\n")

	if m.lastErr != nil {
		b.WriteString(m.theme.ErrorText.Render("error: " + m.lastErr.Error()))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.helpView.View(m.keyMap))
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar.View())

	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}

// listHeight returns the rows available to the roster list.
func (m Model) listHeight() int {
	h := m.height - chromeLines
	if m.showHelp {
		h -= len(m.keyMap.FullHelp())
	}
	if m.lastErr != nil {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}
