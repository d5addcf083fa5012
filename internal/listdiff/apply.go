// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listdiff computes the minimal structural changes between two ordered
// lists of identifiable items.
package listdiff

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrListMismatch is returned when a ChangeSet is replayed against lists
	// of different lengths than the ones it was computed from. Replaying a
	// stale ChangeSet would corrupt the target list, so nothing is mutated.
	ErrListMismatch = errors.New("list does not match the one the changes were computed from")
)

// =============================================================================
// ARRAY REPLAY
// =============================================================================

// Apply mutates *oldItems in place so that, element for element, it matches
// the content and order of newItems.
//
// makeItem materializes an element of the old list's type from a new item and
// is called once per insertion. The optional onUpdate is called for every
// matched pair whose content changed, with the retained old element and the
// corresponding new item; for the update to be observable in the list the
// element type must carry reference semantics (e.g. a pointer). The optional
// onRemove is called for each removed element before it leaves the list.
//
// Matched elements are kept, not replaced, so identities held by the caller
// stay valid across the replay.
func Apply[Old, New any](
	cs *ChangeSet,
	oldItems *[]Old, newItems []New,
	makeItem func(New) Old,
	onUpdate func(Old, New),
	onRemove func(Old),
) error {
	items := *oldItems
	if len(items) != cs.oldLen || len(newItems) != cs.newLen {
		return fmt.Errorf("%w: got %d/%d items, computed against %d/%d",
			ErrListMismatch, len(items), len(newItems), cs.oldLen, cs.newLen)
	}

	// Capture update targets before any index shifts.
	if onUpdate != nil {
		for _, u := range cs.Updates {
			onUpdate(items[u.OldIndex], newItems[u.NewIndex])
		}
	}

	// Removals, highest index first, so pending removal indexes stay valid.
	for i := len(cs.Removals) - 1; i >= 0; i-- {
		idx := cs.Removals[i].Index
		if onRemove != nil {
			onRemove(items[idx])
		}
		items = append(items[:idx], items[idx+1:]...)
	}

	// Moves against the removals-compacted list, in emission order. The
	// intermediate indexes already account for earlier moves.
	for _, m := range cs.Moves {
		item := items[m.IntermediateSourceIndex]
		items = append(items[:m.IntermediateSourceIndex], items[m.IntermediateSourceIndex+1:]...)
		items = append(items, item)
		copy(items[m.IntermediateTargetIndex+1:], items[m.IntermediateTargetIndex:])
		items[m.IntermediateTargetIndex] = item
	}

	// After the moves the matched items are in their final relative order, so
	// inserting ascending by new index lands every new item on its spot.
	for _, ins := range cs.Insertions {
		item := makeItem(newItems[ins.Index])
		items = append(items, item)
		copy(items[ins.Index+1:], items[ins.Index:])
		items[ins.Index] = item
	}

	*oldItems = items
	return nil
}
