// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/relist-tui/internal/ui/styles"
	"github.com/jeranaias/relist-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status
type Status int

const (
	StatusWatching Status = iota
	StatusReloading
	StatusChanged
	StatusPaused
	StatusError
)

// String returns the display string for the status
func (s Status) String() string {
	switch s {
	case StatusWatching:
		return "Watching"
	case StatusReloading:
		return "Reloading..."
	case StatusChanged:
		return "Changed"
	case StatusPaused:
		return "Paused"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s Status) Icon() string {
	switch s {
	case StatusWatching:
		return "~"
	case StatusReloading:
		return "[>]"
	case StatusChanged:
		return styles.StatusIndicators.Success
	case StatusPaused:
		return "||"
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// StatusBar renders the bottom status bar: watched path, item count, the last
// replay summary and keyboard hints.
type StatusBar struct {
	Path          string // Watched roster path
	ItemCount     int    // Rows currently in the list
	LastChange    string // Summary of the most recent replay
	Status        Status // Current status
	Width         int    // Available width
	ShowShortcuts bool   // Show keyboard shortcuts
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status:        StatusWatching,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStatus updates the current status
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// SetChange records the summary of the most recent replay
func (s *StatusBar) SetChange(summary string) {
	s.LastChange = summary
}

// View renders the status bar
func (s *StatusBar) View() string {
	if s.Width < 60 {
		return s.viewNarrow()
	}
	return s.viewWide()
}

// viewNarrow renders a compact status bar for narrow terminals
// Format: icon count change
func (s *StatusBar) viewNarrow() string {
	parts := []string{
		s.getStatusStyle().Render(s.Status.Icon()),
		util.IntToString(s.ItemCount) + " items",
	}
	if s.LastChange != "" {
		parts = append(parts, s.theme.StatusChange.Render(s.LastChange))
	}

	result := strings.Join(parts, " ")

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Width(s.Width).
		Render(result)
}

// viewWide renders the full status bar
// Format: path | N items | change summary ... Status shortcuts
func (s *StatusBar) viewWide() string {
	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	leftParts := []string{}

	if s.Path != "" {
		pathStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		leftParts = append(leftParts, pathStyle.Render(s.Path))
	}

	countStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	leftParts = append(leftParts, countStyle.Render(fmt.Sprintf("%d items", s.ItemCount)))

	if s.LastChange != "" {
		leftParts = append(leftParts, s.theme.StatusChange.Render(s.LastChange))
	}

	leftSection := strings.Join(leftParts, separator)

	// Right section: status and shortcuts
	rightParts := []string{
		s.getStatusStyle().Render(s.Status.Icon() + " " + s.Status.String()),
	}
	if s.ShowShortcuts {
		rightParts = append(rightParts, s.renderShortcuts())
	}
	rightSection := strings.Join(rightParts, " ")

	// Pad the middle so the right section hugs the edge
	leftWidth := lipgloss.Width(leftSection)
	rightWidth := lipgloss.Width(rightSection)
	spacing := s.Width - leftWidth - rightWidth - 2
	if spacing < 1 {
		spacing = 1
	}

	result := leftSection + strings.Repeat(" ", spacing) + rightSection

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(result)
}

// renderShortcuts renders keyboard shortcut hints
func (s *StatusBar) renderShortcuts() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted)

	shortcuts := []string{
		keyStyle.Render("r") + descStyle.Render("eload"),
		keyStyle.Render("q") + descStyle.Render("uit"),
	}

	return strings.Join(shortcuts, " ")
}

// getStatusStyle returns the style for the current status
func (s *StatusBar) getStatusStyle() lipgloss.Style {
	switch s.Status {
	case StatusWatching:
		return s.theme.StatusIdle
	case StatusReloading:
		return lipgloss.NewStyle().Foreground(styles.Amber).Bold(true)
	case StatusChanged:
		return s.theme.StatusChange
	case StatusPaused:
		return lipgloss.NewStyle().Foreground(styles.TextMuted)
	case StatusError:
		return s.theme.ErrorText
	default:
		return s.theme.StatusIdle
	}
}
