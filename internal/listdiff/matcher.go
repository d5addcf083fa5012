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
	// ErrDuplicateIdentity is returned when two items within the same list
	// share an identity key. Matching is undefined in that case, so no
	// ChangeSet is produced.
	ErrDuplicateIdentity = errors.New("duplicate identity within one list")
)

// =============================================================================
// MATCHER
// =============================================================================

// matchedPair is an old item and a new item sharing the same identity.
type matchedPair struct {
	oldIndex int
	newIndex int
}

// Compute finds the differences between oldItems and newItems.
//
// The oldID and newID functions derive an identity key for each element; keys
// from the old list must be comparable to keys from the new one. The equal
// function is called once for every pair of items sharing an identity and
// reports whether their content is unchanged.
//
// Matched pairs that keep their relative order are stationary; the remaining
// pairs become Moves. Stationary pairs are chosen as a longest increasing
// subsequence of new indexes over the matched pairs in old-index order, which
// yields the minimal number of moves for a view that replays them one by one.
//
// Compute fails if either list contains two items with the same identity.
func Compute[Old, New any, ID comparable](
	oldItems []Old, oldID func(Old) ID,
	newItems []New, newID func(New) ID,
	equal func(Old, New) bool,
) (*ChangeSet, error) {
	oldKeys := make([]ID, len(oldItems))
	oldByID := make(map[ID]int, len(oldItems))
	for i, item := range oldItems {
		id := oldID(item)
		if prev, ok := oldByID[id]; ok {
			return nil, fmt.Errorf("old list: items %d and %d share identity %v: %w",
				prev, i, id, ErrDuplicateIdentity)
		}
		oldKeys[i] = id
		oldByID[id] = i
	}

	newByID := make(map[ID]int, len(newItems))
	for j, item := range newItems {
		id := newID(item)
		if prev, ok := newByID[id]; ok {
			return nil, fmt.Errorf("new list: items %d and %d share identity %v: %w",
				prev, j, id, ErrDuplicateIdentity)
		}
		newByID[id] = j
	}

	cs := &ChangeSet{oldLen: len(oldItems), newLen: len(newItems)}

	// Pair up items by identity. Walking the old list in order keeps pairs,
	// removals and updates sorted ascending by old index.
	pairs := make([]matchedPair, 0, min(len(oldItems), len(newItems)))
	matchedNew := make([]bool, len(newItems))
	for i := range oldItems {
		j, ok := newByID[oldKeys[i]]
		if !ok {
			cs.Removals = append(cs.Removals, Removal{Index: i})
			continue
		}
		pairs = append(pairs, matchedPair{oldIndex: i, newIndex: j})
		matchedNew[j] = true
		if !equal(oldItems[i], newItems[j]) {
			cs.Updates = append(cs.Updates, Update{OldIndex: i, NewIndex: j})
		}
	}
	for j := range newItems {
		if !matchedNew[j] {
			cs.Insertions = append(cs.Insertions, Insertion{Index: j})
		}
	}

	cs.Moves = classifyMoves(pairs)
	return cs, nil
}

// ComputeSame is a shortcut for lists whose elements are their own identity.
// Since matched items then compare equal by construction, the result never
// contains updates.
func ComputeSame[T comparable](oldItems, newItems []T) (*ChangeSet, error) {
	self := func(item T) T { return item }
	return Compute(oldItems, self, newItems, self,
		func(old, new T) bool { return old == new })
}

// =============================================================================
// MOVE CLASSIFICATION
// =============================================================================

// classifyMoves splits the matched pairs into stationary ones and moves, and
// computes intermediate indexes for every move.
//
// pairs must be sorted ascending by old index. The pairs whose new indexes
// form a longest increasing subsequence are stationary; each remaining pair
// becomes a Move. Moves are emitted ascending by old index.
func classifyMoves(pairs []matchedPair) []Move {
	newIndexes := make([]int, len(pairs))
	for i, p := range pairs {
		newIndexes[i] = p.newIndex
	}
	stationary := longestIncreasing(newIndexes)

	var moves []Move
	// intermediate is the old list with all removals applied: every matched
	// pair, still in old order. Moves are simulated against it one at a time
	// so each Move carries the positions valid at its point in the replay.
	intermediate := make([]matchedPair, len(pairs))
	copy(intermediate, pairs)

	// settled marks pairs already in their final relative order: the
	// stationary ones up front, each moved pair once its move is applied.
	// The settled pairs stay sorted by new index throughout the simulation.
	settled := make(map[int]bool, len(pairs))
	for i, p := range pairs {
		if stationary[i] {
			settled[p.oldIndex] = true
		}
	}

	for i, p := range pairs {
		if stationary[i] {
			continue
		}
		source := indexOfPair(intermediate, p.oldIndex)
		intermediate = append(intermediate[:source], intermediate[source+1:]...)

		// Re-insert directly after the last settled item that must precede
		// the moved one in the new order. Pairs still waiting for their own
		// move may sit anywhere, so they cannot anchor the slot.
		target := 0
		for k, q := range intermediate {
			if settled[q.oldIndex] && q.newIndex < p.newIndex {
				target = k + 1
			}
		}
		intermediate = append(intermediate, matchedPair{})
		copy(intermediate[target+1:], intermediate[target:])
		intermediate[target] = p
		settled[p.oldIndex] = true

		moves = append(moves, Move{
			OldIndex:                p.oldIndex,
			NewIndex:                p.newIndex,
			IntermediateSourceIndex: source,
			IntermediateTargetIndex: target,
		})
	}
	return moves
}

// indexOfPair returns the current position of the pair with the given old
// index. The pair is always present; matched pairs never leave the
// intermediate list.
func indexOfPair(pairs []matchedPair, oldIndex int) int {
	for i, p := range pairs {
		if p.oldIndex == oldIndex {
			return i
		}
	}
	return -1
}

// longestIncreasing marks one longest strictly increasing subsequence of seq.
// Patience sorting with predecessor links, O(n log n).
func longestIncreasing(seq []int) []bool {
	n := len(seq)
	tails := make([]int, 0, n) // positions of the smallest tail per length
	prev := make([]int, n)
	for i, v := range seq {
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if seq[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo > 0 {
			prev[i] = tails[lo-1]
		} else {
			prev[i] = -1
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	marked := make([]bool, n)
	if len(tails) > 0 {
		for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
			marked[i] = true
		}
	}
	return marked
}
