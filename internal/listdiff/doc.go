// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listdiff computes the minimal structural changes between two ordered
// lists of identifiable items.
//
// Items are matched across the two lists by an identity key, so the result is
// expressed as removals, insertions, moves and content updates rather than as a
// textual edit script. Indexes for removals and move sources are relative to
// the old list; indexes for insertions and move targets are relative to the new
// list. This is the shape batch-updating list views expect.
//
// # Key Types
//
//   - ChangeSet: Complete result with removals, insertions, moves and updates
//   - Removal, Insertion, Move, Update: Individual change records
//   - BatchUpdater: Interface for list views that can replay a ChangeSet
//
// # Usage
//
// Compute changes between two item lists keyed by ID:
//
//	cs, err := listdiff.Compute(oldItems, func(it *Item) string { return it.ID },
//		newItems, func(it Item) string { return it.ID },
//		func(old *Item, new Item) bool { return old.Equal(new) })
//
// Replay the changes onto the old list in place:
//
//	err = listdiff.Apply(cs, &oldItems, newItems, makeItem, onUpdate, onRemove)
//
// Or forward them to a list view as one batch:
//
//	reload := listdiff.ApplyBatch(cs, view, rowPos, RowAnimationFade, RowAnimationSlide)
package listdiff
