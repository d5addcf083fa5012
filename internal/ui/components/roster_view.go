// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the relist TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/relist-tui/internal/listdiff"
	"github.com/jeranaias/relist-tui/internal/roster"
	"github.com/jeranaias/relist-tui/internal/ui/styles"
	"github.com/jeranaias/relist-tui/internal/util"
)

// =============================================================================
// ROW ANIMATION
// =============================================================================

// RowAnimation tags the transient highlight a row should carry after a replay.
type RowAnimation int

const (
	// RowAnimationNone leaves the row unstyled
	RowAnimationNone RowAnimation = iota

	// RowAnimationFade marks rows leaving the list
	RowAnimationFade

	// RowAnimationSlide marks rows that changed position
	RowAnimationSlide

	// RowAnimationFlash marks rows whose content changed in place
	RowAnimationFlash
)

// =============================================================================
// ROSTER VIEW COMPONENT
// =============================================================================

// Row is a rendered roster line plus its current highlight.
type Row struct {
	Item roster.Item
	Anim RowAnimation
}

// RosterView renders the roster as a scrollable list and consumes change sets
// as batched row operations. It satisfies the listdiff batch updater contract
// with int positions and RowAnimation transitions.
type RosterView struct {
	theme  *styles.Theme
	rows   []Row
	width  int
	height int

	selected int
	offset   int

	// Batch state, valid only between BeginBatch and the commit inside
	// ApplyChanges.
	pendingInserts map[int]RowAnimation
	pendingMoves   map[int]bool
	lastRemoved    int
}

// NewRosterView creates an empty roster view.
func NewRosterView(theme *styles.Theme) *RosterView {
	return &RosterView{
		theme: theme,
	}
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// SetSize sets the component dimensions.
func (rv *RosterView) SetSize(width, height int) {
	rv.width = width
	rv.height = height
	rv.clampScroll()
}

// Len returns the number of rows currently displayed.
func (rv *RosterView) Len() int {
	return len(rv.rows)
}

// Rows returns the current rows, in display order.
func (rv *RosterView) Rows() []Row {
	return rv.rows
}

// SelectedItem returns the item under the cursor, if any.
func (rv *RosterView) SelectedItem() (roster.Item, bool) {
	if rv.selected < 0 || rv.selected >= len(rv.rows) {
		return roster.Item{}, false
	}
	return rv.rows[rv.selected].Item, true
}

// =============================================================================
// BATCH UPDATER IMPLEMENTATION
// =============================================================================

// DeleteRows records the rows leaving the list. Positions are relative to the
// list before the batch; the rows simply vanish from the next commit, so only
// the count is kept for the status line.
func (rv *RosterView) DeleteRows(positions []int, anim RowAnimation) {
	rv.lastRemoved += len(positions)
}

// InsertRows records post-batch positions that should surface with the given
// highlight once the batch commits.
func (rv *RosterView) InsertRows(positions []int, anim RowAnimation) {
	for _, p := range positions {
		rv.pendingInserts[p] = anim
	}
}

// MoveRow records that the row landing at to (post-batch position) changed
// place and should be highlighted as moved.
func (rv *RosterView) MoveRow(from, to int) {
	rv.pendingMoves[to] = true
}

// =============================================================================
// CHANGE REPLAY
// =============================================================================

// ApplyChanges replays a change set against the view as one batch and commits
// the new item list. Rows that were inserted, moved or updated in place come
// out carrying the matching highlight, cleared by the next ClearHighlights.
// Returns the number of rows removed by the batch.
func (rv *RosterView) ApplyChanges(items []roster.Item, cs *listdiff.ChangeSet) int {
	// Remember the identity under the cursor so selection follows the item,
	// not the index.
	selectedID := ""
	if it, ok := rv.SelectedItem(); ok {
		selectedID = it.ID
	}

	rv.pendingInserts = make(map[int]RowAnimation)
	rv.pendingMoves = make(map[int]bool)
	rv.lastRemoved = 0

	reload := listdiff.ApplyBatch[int, RowAnimation](
		cs, rv, func(row int) int { return row },
		RowAnimationFade, RowAnimationFade,
	)

	rows := make([]Row, len(items))
	for i, it := range items {
		anim := RowAnimationNone
		if a, ok := rv.pendingInserts[i]; ok {
			anim = a
		} else if rv.pendingMoves[i] {
			anim = RowAnimationSlide
		}
		rows[i] = Row{Item: it, Anim: anim}
	}

	rv.rows = rows
	rv.pendingInserts = nil
	rv.pendingMoves = nil

	// In-place updates reload after the structural batch.
	rv.ReloadRows(reload)

	rv.selected = 0
	if selectedID != "" {
		for i, row := range rv.rows {
			if row.Item.ID == selectedID {
				rv.selected = i
				break
			}
		}
	}
	rv.clampScroll()

	return rv.lastRemoved
}

// ReloadRows restyles rows whose content changed without a position change.
func (rv *RosterView) ReloadRows(positions []int) {
	for _, pos := range positions {
		if pos >= 0 && pos < len(rv.rows) {
			rv.rows[pos].Anim = RowAnimationFlash
		}
	}
}

// SetItems replaces the rows without any highlight, for the initial load.
func (rv *RosterView) SetItems(items []roster.Item) {
	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{Item: it}
	}
	rv.rows = rows
	rv.selected = 0
	rv.offset = 0
}

// ClearHighlights resets every row to the plain style.
func (rv *RosterView) ClearHighlights() {
	for i := range rv.rows {
		rv.rows[i].Anim = RowAnimationNone
	}
}

// HasHighlights reports whether any row still carries a replay highlight.
func (rv *RosterView) HasHighlights() bool {
	for _, row := range rv.rows {
		if row.Anim != RowAnimationNone {
			return true
		}
	}
	return false
}

// =============================================================================
// CURSOR
// =============================================================================

// CursorUp moves the selection up one row.
func (rv *RosterView) CursorUp() {
	if rv.selected > 0 {
		rv.selected--
	}
	rv.clampScroll()
}

// CursorDown moves the selection down one row.
func (rv *RosterView) CursorDown() {
	if rv.selected < len(rv.rows)-1 {
		rv.selected++
	}
	rv.clampScroll()
}

// clampScroll keeps the selection inside the visible window.
func (rv *RosterView) clampScroll() {
	if rv.selected < 0 {
		rv.selected = 0
	}
	if rv.selected >= len(rv.rows) && len(rv.rows) > 0 {
		rv.selected = len(rv.rows) - 1
	}

	visible := rv.visibleRows()
	if visible <= 0 {
		return
	}
	if rv.selected < rv.offset {
		rv.offset = rv.selected
	}
	if rv.selected >= rv.offset+visible {
		rv.offset = rv.selected - visible + 1
	}
	if rv.offset < 0 {
		rv.offset = 0
	}
}

// visibleRows returns how many rows fit in the current height.
func (rv *RosterView) visibleRows() int {
	if rv.height <= 0 {
		return len(rv.rows)
	}
	return rv.height
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the visible window of the roster.
func (rv *RosterView) View() string {
	if len(rv.rows) == 0 {
		return rv.renderEmpty()
	}

	visible := rv.visibleRows()
	end := rv.offset + visible
	if end > len(rv.rows) {
		end = len(rv.rows)
	}

	var b strings.Builder
	for i := rv.offset; i < end; i++ {
		b.WriteString(rv.renderRow(i))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderEmpty renders the empty state.
func (rv *RosterView) renderEmpty() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Padding(2).
		Width(rv.width).
		Align(lipgloss.Center)

	return emptyStyle.Render("Roster is empty")
}

// renderRow renders a single roster row.
func (rv *RosterView) renderRow(i int) string {
	row := rv.rows[i]

	marker := "  "
	if i == rv.selected {
		marker = rv.theme.RowMarker.Render("> ")
	}

	icon := statusIcon(row.Item.Status)
	line := icon + " " + row.Item.Title
	if row.Item.Note != "" {
		line += "  (" + row.Item.Note + ")"
	}

	// Leave room for the marker and padding. Truncate and pad before styling
	// so the cut never lands inside an escape sequence and row backgrounds
	// span the full width.
	if rv.width > 4 {
		line = util.PadRight(util.TruncateWidth(line, rv.width-4), rv.width-4)
	}

	return marker + rv.rowStyle(i, row).Render(line)
}

// rowStyle picks the style for a row: selection wins, then replay highlight,
// then item status.
func (rv *RosterView) rowStyle(i int, row Row) lipgloss.Style {
	if i == rv.selected {
		return rv.theme.RowSelected
	}

	switch row.Anim {
	case RowAnimationFade:
		return rv.theme.RowInserted
	case RowAnimationSlide:
		return rv.theme.RowMoved
	case RowAnimationFlash:
		return rv.theme.RowUpdated
	}

	switch row.Item.Status {
	case roster.StatusDone:
		return rv.theme.RowDone
	case roster.StatusBlocked:
		return rv.theme.RowBlocked
	default:
		return rv.theme.Row
	}
}

// statusIcon returns the indicator for an item status (ASCII-compatible).
func statusIcon(status roster.Status) string {
	switch status {
	case roster.StatusOpen:
		return "[ ]"
	case roster.StatusActive:
		return "[>]"
	case roster.StatusDone:
		return "[x]"
	case roster.StatusBlocked:
		return "[!]"
	default:
		return "[?]"
	}
}
