// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the relist TUI.

This package contains the styled components built on top of the Bubble Tea
and Lip Gloss libraries that make up the watch screen.

# Core Components

RosterView (roster_view.go) - The scrollable roster list. Consumes change
sets as batched row operations (deletes, inserts, moves, in-place reloads)
and highlights the touched rows until the next tick clears them.

Header (header.go) - Application header with the roster title and the
watched file path.

StatusBar (statusbar.go) - Bottom status bar with item count, the last
replay summary and keyboard shortcuts.

# Theme Integration

All components accept a *styles.Theme for consistent styling:

	theme := styles.NewTheme()
	view := components.NewRosterView(theme)
	view.SetSize(80, 24)
	view.SetItems(snapshot.Items)
	out := view.View()

# Change Replay

RosterView implements the listdiff batch updater contract with int positions
and RowAnimation transitions. A reload cycle looks like:

	cs, err := listdiff.Compute(oldItems, newItems, id, id, eq)
	removed := view.ApplyChanges(newItems, cs)
*/
package components
