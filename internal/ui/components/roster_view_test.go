// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/relist-tui/internal/listdiff"
	"github.com/jeranaias/relist-tui/internal/roster"
	"github.com/jeranaias/relist-tui/internal/ui/styles"
)

func testItems(ids ...string) []roster.Item {
	items := make([]roster.Item, len(ids))
	for i, id := range ids {
		items[i] = roster.Item{ID: id, Title: "task " + id, Status: roster.StatusOpen}
	}
	return items
}

func computeChanges(t *testing.T, old, new []roster.Item) *listdiff.ChangeSet {
	t.Helper()
	cs, err := listdiff.Compute(
		old, func(it roster.Item) string { return it.ID },
		new, func(it roster.Item) string { return it.ID },
		roster.Item.Equal,
	)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return cs
}

// =============================================================================
// REPLAY TESTS
// =============================================================================

func TestRosterViewApplyChanges(t *testing.T) {
	theme := styles.NewTheme()
	view := NewRosterView(theme)

	old := testItems("a", "b", "c")
	view.SetItems(old)

	// b removed, d inserted, c moved ahead of a.
	new := testItems("c", "a", "d")
	cs := computeChanges(t, old, new)

	removed := view.ApplyChanges(new, cs)

	if removed != 1 {
		t.Errorf("ApplyChanges() removed = %d, want 1", removed)
	}
	if view.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", view.Len())
	}

	wantIDs := []string{"c", "a", "d"}
	for i, want := range wantIDs {
		if view.Rows()[i].Item.ID != want {
			t.Errorf("row %d = %q, want %q", i, view.Rows()[i].Item.ID, want)
		}
	}

	// d is new; the single recorded move carries a past c.
	if got := view.Rows()[2].Anim; got != RowAnimationFade {
		t.Errorf("inserted row anim = %v, want %v", got, RowAnimationFade)
	}
	if got := view.Rows()[1].Anim; got != RowAnimationSlide {
		t.Errorf("moved row anim = %v, want %v", got, RowAnimationSlide)
	}
	if got := view.Rows()[0].Anim; got != RowAnimationNone {
		t.Errorf("stationary row anim = %v, want %v", got, RowAnimationNone)
	}
}

func TestRosterViewUpdateHighlight(t *testing.T) {
	theme := styles.NewTheme()
	view := NewRosterView(theme)

	old := testItems("a", "b")
	view.SetItems(old)

	// Same order, b's title changes in place.
	new := testItems("a", "b")
	new[1].Title = "renamed"
	cs := computeChanges(t, old, new)

	view.ApplyChanges(new, cs)

	if got := view.Rows()[1].Anim; got != RowAnimationFlash {
		t.Errorf("updated row anim = %v, want %v", got, RowAnimationFlash)
	}
	if got := view.Rows()[0].Anim; got != RowAnimationNone {
		t.Errorf("unchanged row anim = %v, want %v", got, RowAnimationNone)
	}
}

func TestRosterViewClearHighlights(t *testing.T) {
	theme := styles.NewTheme()
	view := NewRosterView(theme)

	old := testItems("a")
	view.SetItems(old)

	new := testItems("a", "b")
	view.ApplyChanges(new, computeChanges(t, old, new))

	if !view.HasHighlights() {
		t.Fatal("expected highlights after a replay with an insertion")
	}

	view.ClearHighlights()
	if view.HasHighlights() {
		t.Error("ClearHighlights() should reset all rows")
	}
}

// =============================================================================
// SELECTION TESTS
// =============================================================================

func TestRosterViewSelectionFollowsItem(t *testing.T) {
	theme := styles.NewTheme()
	view := NewRosterView(theme)

	old := testItems("a", "b", "c")
	view.SetItems(old)
	view.CursorDown()
	view.CursorDown() // select c

	// c moves to the front.
	new := testItems("c", "a", "b")
	view.ApplyChanges(new, computeChanges(t, old, new))

	it, ok := view.SelectedItem()
	if !ok {
		t.Fatal("SelectedItem() should report a selection")
	}
	if it.ID != "c" {
		t.Errorf("selection = %q, want %q", it.ID, "c")
	}
}

func TestRosterViewSelectionAfterRemoval(t *testing.T) {
	theme := styles.NewTheme()
	view := NewRosterView(theme)

	old := testItems("a", "b")
	view.SetItems(old)
	view.CursorDown() // select b

	// Selected item disappears; cursor falls back to the top.
	new := testItems("a")
	view.ApplyChanges(new, computeChanges(t, old, new))

	it, ok := view.SelectedItem()
	if !ok {
		t.Fatal("SelectedItem() should report a selection")
	}
	if it.ID != "a" {
		t.Errorf("selection = %q, want %q", it.ID, "a")
	}
}

func TestRosterViewCursorBounds(t *testing.T) {
	theme := styles.NewTheme()
	view := NewRosterView(theme)
	view.SetItems(testItems("a", "b"))

	view.CursorUp() // already at top
	if it, _ := view.SelectedItem(); it.ID != "a" {
		t.Errorf("CursorUp at top moved selection to %q", it.ID)
	}

	view.CursorDown()
	view.CursorDown() // already at bottom
	if it, _ := view.SelectedItem(); it.ID != "b" {
		t.Errorf("CursorDown at bottom moved selection to %q", it.ID)
	}
}

// =============================================================================
// RENDERING TESTS
// =============================================================================

func TestRosterViewRender(t *testing.T) {
	theme := styles.NewTheme()
	view := NewRosterView(theme)
	view.SetSize(80, 24)
	view.SetItems(testItems("a", "b"))

	out := view.View()
	if !strings.Contains(out, "task a") {
		t.Errorf("View() missing first row: %q", out)
	}
	if !strings.Contains(out, "task b") {
		t.Errorf("View() missing second row: %q", out)
	}
}

func TestRosterViewRenderEmpty(t *testing.T) {
	theme := styles.NewTheme()
	view := NewRosterView(theme)
	view.SetSize(40, 10)

	out := view.View()
	if !strings.Contains(out, "Roster is empty") {
		t.Errorf("View() on empty roster = %q", out)
	}
}

func TestRosterViewScrollWindow(t *testing.T) {
	theme := styles.NewTheme()
	view := NewRosterView(theme)
	view.SetSize(40, 2)
	view.SetItems(testItems("a", "b", "c", "d"))

	// Move selection past the window; the view should scroll with it.
	view.CursorDown()
	view.CursorDown() // select c

	out := view.View()
	if !strings.Contains(out, "task c") {
		t.Errorf("View() should include the selected row: %q", out)
	}
	if strings.Contains(out, "task a") {
		t.Errorf("View() should have scrolled the first row out: %q", out)
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBarView(t *testing.T) {
	theme := styles.NewTheme()
	bar := NewStatusBar(theme)
	bar.Path = "todo.toml"
	bar.ItemCount = 4
	bar.SetChange("+1 -2")
	bar.SetWidth(100)

	out := bar.View()
	if !strings.Contains(out, "todo.toml") {
		t.Errorf("View() missing path: %q", out)
	}
	if !strings.Contains(out, "4 items") {
		t.Errorf("View() missing item count: %q", out)
	}
	if !strings.Contains(out, "+1 -2") {
		t.Errorf("View() missing change summary: %q", out)
	}
}

func TestStatusBarNarrow(t *testing.T) {
	theme := styles.NewTheme()
	bar := NewStatusBar(theme)
	bar.ItemCount = 2
	bar.SetWidth(40)

	out := bar.View()
	if !strings.Contains(out, "2 items") {
		t.Errorf("narrow View() missing item count: %q", out)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusWatching, "Watching"},
		{StatusReloading, "Reloading..."},
		{StatusChanged, "Changed"},
		{StatusPaused, "Paused"},
		{StatusError, "Error"},
	}

	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}
