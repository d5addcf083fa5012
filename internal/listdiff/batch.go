// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listdiff computes the minimal structural changes between two ordered
// lists of identifiable items.
package listdiff

// =============================================================================
// BATCH UPDATER INTERFACE
// =============================================================================

// BatchUpdater is implemented by list views that can replay a ChangeSet as a
// batch of row operations. Pos is the view's positional handle (a plain row
// index, an index path, a node handle); Anim tags the visual transition the
// view should use for removals and insertions.
type BatchUpdater[Pos, Anim any] interface {
	// DeleteRows removes the rows at the given positions, which are relative
	// to the list before any of the batch was applied.
	DeleteRows(positions []Pos, anim Anim)

	// InsertRows inserts rows at the given positions, relative to the list
	// after the whole batch is applied.
	InsertRows(positions []Pos, anim Anim)

	// MoveRow moves the row at from (old-list relative) to to (new-list
	// relative).
	MoveRow(from, to Pos)
}

// =============================================================================
// BATCH REPLAY
// =============================================================================

// ApplyBatch forwards the ChangeSet to a list view as one logical batch:
// removals (old-list positions), insertions (new-list positions) and moves
// (old position to new position).
//
// posForRow maps a flat row index to the view's positional handle; it is
// called with old-list indexes for removals and move sources and with new-list
// indexes for insertions and move targets.
//
// The returned positions are the updates that were not accompanied by a move
// (old and new index equal). A view cannot reorder and reload the same row in
// one transaction, so the caller must reload these in a separate batch after
// this one. Updates whose row also moved are left to the move's own refresh.
func ApplyBatch[Pos, Anim any](
	cs *ChangeSet,
	view BatchUpdater[Pos, Anim],
	posForRow func(row int) Pos,
	removeAnim, insertAnim Anim,
) []Pos {
	if len(cs.Removals) > 0 {
		positions := make([]Pos, len(cs.Removals))
		for i, r := range cs.Removals {
			positions[i] = posForRow(r.Index)
		}
		view.DeleteRows(positions, removeAnim)
	}

	if len(cs.Insertions) > 0 {
		positions := make([]Pos, len(cs.Insertions))
		for i, ins := range cs.Insertions {
			positions[i] = posForRow(ins.Index)
		}
		view.InsertRows(positions, insertAnim)
	}

	for _, m := range cs.Moves {
		view.MoveRow(posForRow(m.OldIndex), posForRow(m.NewIndex))
	}

	var reload []Pos
	for _, u := range cs.Updates {
		if u.OldIndex == u.NewIndex {
			reload = append(reload, posForRow(u.OldIndex))
		}
	}
	return reload
}
