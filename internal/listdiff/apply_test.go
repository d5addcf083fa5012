// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listdiff computes the minimal structural changes between two ordered
// lists of identifiable items.
package listdiff

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// =============================================================================
// ARRAY REPLAY TESTS
// =============================================================================

func TestApply_ReplayMatchesNew(t *testing.T) {
	tests := []struct {
		name string
		old  []string
		new  []string
	}{
		{"identical", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"removal", []string{"a", "b", "c"}, []string{"a", "c"}},
		{"insertion", []string{"a", "c"}, []string{"a", "b", "c"}},
		{"rotation", []string{"a", "b", "c"}, []string{"c", "a", "b"}},
		{"reversal", []string{"a", "b", "c"}, []string{"c", "b", "a"}},
		{"swap", []string{"a", "b"}, []string{"b", "a"}},
		{"interleaved moves", []string{"a", "b", "c", "d", "e"}, []string{"c", "d", "b", "e", "a"}},
		{"mixed", []string{"a", "b", "c", "d"}, []string{"d", "x", "b"}},
		{"disjoint", []string{"a", "b"}, []string{"c", "d"}},
		{"emptied", []string{"a", "b"}, nil},
		{"filled", nil, []string{"a", "b"}},
		// The next two put a not-yet-moved item with a small new index to the
		// right of a larger stationary one, so a naive target scan anchors on
		// the wrong element.
		{"pending move to the right", []string{"a", "b", "c", "d"}, []string{"d", "b", "a", "c"}},
		{"pending move past anchor", []string{"a", "b", "c", "d", "e"}, []string{"a", "e", "c", "b", "d"}},
		{"churn around moves",
			[]string{"r1", "a", "b", "r2", "c", "d", "e", "r3"},
			[]string{"i1", "a", "e", "i2", "c", "b", "d", "i3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cs, err := ComputeSame(tc.old, tc.new)
			if err != nil {
				t.Fatalf("ComputeSame failed: %v", err)
			}

			items := append([]string(nil), tc.old...)
			err = Apply(cs, &items, tc.new, func(s string) string { return s }, nil, nil)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}

			if len(items) != len(tc.new) {
				t.Fatalf("replayed list = %v, want %v", items, tc.new)
			}
			if len(tc.new) > 0 && !reflect.DeepEqual(items, tc.new) {
				t.Errorf("replayed list = %v, want %v", items, tc.new)
			}
		})
	}
}

func TestApply_AllPermutations(t *testing.T) {
	// Replay correctness must hold for every reordering, not just the
	// hand-picked cases above. Exhaustive up to six elements.
	for n := 1; n <= 6; n++ {
		base := make([]int, n)
		for i := range base {
			base[i] = i
		}
		perm := append([]int(nil), base...)
		forEachPermutation(perm, func(p []int) {
			cs, err := ComputeSame(base, p)
			if err != nil {
				t.Fatalf("ComputeSame(%v, %v) failed: %v", base, p, err)
			}
			items := append([]int(nil), base...)
			if err := Apply(cs, &items, p, func(v int) int { return v }, nil, nil); err != nil {
				t.Fatalf("Apply(%v -> %v) failed: %v", base, p, err)
			}
			if !reflect.DeepEqual(items, p) {
				t.Errorf("replay(%v -> %v) = %v", base, p, items)
			}
		})
	}
}

// forEachPermutation calls fn with every permutation of seq, permuting in
// place via Heap's algorithm. fn must not retain the slice.
func forEachPermutation(seq []int, fn func([]int)) {
	var recurse func(k int)
	recurse = func(k int) {
		if k <= 1 {
			fn(seq)
			return
		}
		for i := 0; i < k; i++ {
			recurse(k - 1)
			if k%2 == 0 {
				seq[i], seq[k-1] = seq[k-1], seq[i]
			} else {
				seq[0], seq[k-1] = seq[k-1], seq[0]
			}
		}
	}
	recurse(len(seq))
}

func TestApply_RandomChurn(t *testing.T) {
	// Random mixes of removals, insertions and moves, deterministic seed.
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 500; iter++ {
		n := rng.Intn(9) + 1
		old := rng.Perm(n)

		var new []int
		for _, v := range old {
			if rng.Intn(4) > 0 {
				new = append(new, v)
			}
		}
		for extra := rng.Intn(4); extra > 0; extra-- {
			new = append(new, n+extra+100)
		}
		rng.Shuffle(len(new), func(i, j int) { new[i], new[j] = new[j], new[i] })

		cs, err := ComputeSame(old, new)
		if err != nil {
			t.Fatalf("ComputeSame(%v, %v) failed: %v", old, new, err)
		}
		items := append([]int(nil), old...)
		if err := Apply(cs, &items, new, func(v int) int { return v }, nil, nil); err != nil {
			t.Fatalf("Apply(%v -> %v) failed: %v", old, new, err)
		}
		if len(items) != len(new) {
			t.Fatalf("replay(%v -> %v) = %v", old, new, items)
		}
		for i := range new {
			if items[i] != new[i] {
				t.Fatalf("replay(%v -> %v) = %v", old, new, items)
			}
		}
	}
}

func TestApply_Callbacks(t *testing.T) {
	type row struct {
		id   string
		body string
	}
	oldRows := []*row{{"a", "v1"}, {"b", "v1"}, {"c", "v1"}}
	newRows := []row{{"c", "v2"}, {"d", "v1"}, {"a", "v1"}}

	cs, err := Compute(oldRows, func(r *row) string { return r.id },
		newRows, func(r row) string { return r.id },
		func(o *row, n row) bool { return o.body == n.body })
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	keptA := oldRows[0]
	keptC := oldRows[2]

	var removed []string
	items := append([]*row(nil), oldRows...)
	err = Apply(cs, &items, newRows,
		func(n row) *row { return &row{id: n.id, body: n.body} },
		func(o *row, n row) { o.body = n.body },
		func(o *row) { removed = append(removed, o.id) })
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Content and order must match the new list.
	for i, n := range newRows {
		if items[i].id != n.id || items[i].body != n.body {
			t.Errorf("item %d = %+v, want %+v", i, *items[i], n)
		}
	}

	// Matched items keep their identity: the same allocations survive the
	// replay, only updated in place.
	if items[0] != keptC {
		t.Errorf("item c was replaced instead of retained")
	}
	if items[2] != keptA {
		t.Errorf("item a was replaced instead of retained")
	}

	if len(removed) != 1 || removed[0] != "b" {
		t.Errorf("removed = %v, want [b]", removed)
	}
}

func TestApply_ListMismatch(t *testing.T) {
	old := []string{"a", "b", "c"}
	new := []string{"a", "c"}

	cs, err := ComputeSame(old, new)
	if err != nil {
		t.Fatalf("ComputeSame failed: %v", err)
	}

	// Replaying against a shorter list than the one the set was computed
	// from must fail without touching it.
	stale := []string{"a", "b"}
	err = Apply(cs, &stale, new, func(s string) string { return s }, nil, nil)
	if !errors.Is(err, ErrListMismatch) {
		t.Fatalf("err = %v, want ErrListMismatch", err)
	}
	if !reflect.DeepEqual(stale, []string{"a", "b"}) {
		t.Errorf("stale list was mutated: %v", stale)
	}
}

func TestChangeSet_Summary(t *testing.T) {
	cs, err := ComputeSame([]string{"a", "b", "c"}, []string{"c", "a"})
	if err != nil {
		t.Fatalf("ComputeSame failed: %v", err)
	}
	// b removed, plus one move to put c ahead of a.
	if got := cs.Summary(); got != "-1 moved:1" {
		t.Errorf("Summary() = %q, want %q", got, "-1 moved:1")
	}

	empty, err := ComputeSame([]string{"a"}, []string{"a"})
	if err != nil {
		t.Fatalf("ComputeSame failed: %v", err)
	}
	if got := empty.Summary(); got != "no changes" {
		t.Errorf("Summary() = %q, want %q", got, "no changes")
	}
}
