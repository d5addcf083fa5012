// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listdiff computes the minimal structural changes between two ordered
// lists of identifiable items.
package listdiff

import (
	"fmt"
	"strings"
)

// =============================================================================
// CHANGE RECORDS
// =============================================================================

// Removal records an item present in the old list but absent from the new one.
type Removal struct {
	// Index is the position of the removed item in the old list.
	Index int
}

// Insertion records an item present in the new list but absent from the old one.
type Insertion struct {
	// Index is the position of the inserted item in the new list.
	Index int
}

// Move records a matched item whose position changed relative to the other
// matched items.
type Move struct {
	// OldIndex is the item's position in the old list.
	OldIndex int

	// NewIndex is the item's position in the new list.
	NewIndex int

	// IntermediateSourceIndex is the item's position in the intermediate list
	// (the old list with all removals applied and every earlier move already
	// performed) immediately before this move is performed.
	IntermediateSourceIndex int

	// IntermediateTargetIndex is the position the item is re-inserted at in
	// the intermediate list, after it has been taken out from
	// IntermediateSourceIndex.
	IntermediateTargetIndex int
}

// Update records a matched pair whose identity is equal but whose content
// differs. An item can both move and update; in that case the same index pair
// appears in Moves as well.
type Update struct {
	// OldIndex is the item's position in the old list.
	OldIndex int

	// NewIndex is the item's position in the new list.
	NewIndex int
}

// =============================================================================
// CHANGE SET
// =============================================================================

// ChangeSet is the complete difference between two lists. It is an immutable
// value once computed and holds no reference to the input lists, so it is safe
// to share across goroutines.
//
// Removals and Moves are ordered ascending by old index, Insertions and
// Updates ascending by new index. A moved item is never also reported as
// removed plus inserted.
type ChangeSet struct {
	Removals   []Removal
	Insertions []Insertion
	Moves      []Move
	Updates    []Update

	// oldLen and newLen are the lengths of the lists the set was computed
	// against, kept for replay validation only.
	oldLen int
	newLen int
}

// Empty reports whether the two lists were identical in order and content.
func (cs *ChangeSet) Empty() bool {
	return len(cs.Removals) == 0 && len(cs.Insertions) == 0 &&
		len(cs.Moves) == 0 && len(cs.Updates) == 0
}

// Summary returns a short human-readable description of the change counts,
// e.g. "-2 +1 ~3 moved:1".
func (cs *ChangeSet) Summary() string {
	if cs.Empty() {
		return "no changes"
	}
	parts := make([]string, 0, 4)
	if n := len(cs.Removals); n > 0 {
		parts = append(parts, fmt.Sprintf("-%d", n))
	}
	if n := len(cs.Insertions); n > 0 {
		parts = append(parts, fmt.Sprintf("+%d", n))
	}
	if n := len(cs.Updates); n > 0 {
		parts = append(parts, fmt.Sprintf("~%d", n))
	}
	if n := len(cs.Moves); n > 0 {
		parts = append(parts, fmt.Sprintf("moved:%d", n))
	}
	return strings.Join(parts, " ")
}
