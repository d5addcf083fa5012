// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/relist-tui/internal/ui/styles"
	"github.com/jeranaias/relist-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header renders the title bar: the roster title and the watched file path.
type Header struct {
	Title string // Roster title (default: "relist")
	Path  string // Watched file path
	Width int    // Available width
	theme *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "relist",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTitle updates the displayed roster title
func (h *Header) SetTitle(title string) {
	if title != "" {
		h.Title = title
	}
}

// View renders the header component
func (h *Header) View() string {
	width := h.Width
	if width < 20 {
		width = 20
	}

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)

	brand := accentStyle.Render("< ") +
		h.theme.HeaderTitle.Render(h.Title) +
		accentStyle.Render(" >")

	line := brand
	if h.Path != "" {
		// Truncate the raw path before styling so the cut never lands inside
		// an escape sequence.
		room := width - 2 - lipgloss.Width(brand) - 2
		if room > 3 {
			line += "  " + h.theme.HeaderSubtitle.Render(util.TruncateWidth(h.Path, room))
		}
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Padding(0, 1).
		Width(width).
		Render(line)
}
