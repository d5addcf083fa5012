// diff_cmd.go - The offline diff command: compare two roster snapshots.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/relist-tui/internal/listdiff"
	"github.com/jeranaias/relist-tui/internal/roster"
	"github.com/jeranaias/relist-tui/internal/ui/styles"
)

// =============================================================================
// DIFF DATA
// =============================================================================

// diffEntry is one change line in JSON output.
type diffEntry struct {
	Kind     string `json:"kind"`
	OldIndex *int   `json:"old_index,omitempty"`
	NewIndex *int   `json:"new_index,omitempty"`
	ID       string `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
}

// diffItem is one row of the replayed list in JSON output.
type diffItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DiffData is the JSON payload for the diff command.
type DiffData struct {
	Old     string      `json:"old"`
	New     string      `json:"new"`
	Summary string      `json:"summary"`
	Changes []diffEntry `json:"changes"`
	Result  []diffItem  `json:"result"`
}

// =============================================================================
// HANDLER
// =============================================================================

// HandleDiff handles the "diff" command: load both snapshots, reconcile and
// print the change set.
func HandleDiff(args Args) error {
	if args.OldPath == "" || args.NewPath == "" {
		return fmt.Errorf("diff needs two snapshot paths, e.g. relist diff old.toml new.toml")
	}

	oldSnap, err := roster.Load(args.OldPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", args.OldPath, err)
	}
	newSnap, err := roster.Load(args.NewPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", args.NewPath, err)
	}

	cs, err := listdiff.Compute(
		oldSnap.Items, func(it roster.Item) string { return it.ID },
		newSnap.Items, func(it roster.Item) string { return it.ID },
		roster.Item.Equal,
	)
	if err != nil {
		return err
	}

	if args.JSON {
		resp := NewJSONResponse("diff", buildDiffData(args, oldSnap, newSnap, cs))
		return resp.Print()
	}

	printDiff(os.Stdout, oldSnap, newSnap, cs)
	return nil
}

// buildDiffData flattens a change set into the JSON payload.
func buildDiffData(args Args, oldSnap, newSnap *roster.Snapshot, cs *listdiff.ChangeSet) DiffData {
	data := DiffData{
		Old:     args.OldPath,
		New:     args.NewPath,
		Summary: cs.Summary(),
		Changes: make([]diffEntry, 0),
	}

	for _, r := range cs.Removals {
		idx := r.Index
		it := oldSnap.Items[idx]
		data.Changes = append(data.Changes, diffEntry{
			Kind: "removal", OldIndex: &idx, ID: it.ID, Title: it.Title,
		})
	}
	for _, ins := range cs.Insertions {
		idx := ins.Index
		it := newSnap.Items[idx]
		data.Changes = append(data.Changes, diffEntry{
			Kind: "insertion", NewIndex: &idx, ID: it.ID, Title: it.Title,
		})
	}
	for _, m := range cs.Moves {
		oldIdx, newIdx := m.OldIndex, m.NewIndex
		it := newSnap.Items[newIdx]
		data.Changes = append(data.Changes, diffEntry{
			Kind: "move", OldIndex: &oldIdx, NewIndex: &newIdx, ID: it.ID, Title: it.Title,
		})
	}
	for _, u := range cs.Updates {
		oldIdx, newIdx := u.OldIndex, u.NewIndex
		it := newSnap.Items[newIdx]
		data.Changes = append(data.Changes, diffEntry{
			Kind: "update", OldIndex: &oldIdx, NewIndex: &newIdx, ID: it.ID, Title: it.Title,
		})
	}

	for _, it := range replayDiff(oldSnap, newSnap, cs) {
		data.Result = append(data.Result, diffItem{ID: it.ID, Title: it.Title})
	}
	return data
}

// replayDiff applies the change set to a copy of the old list, so the printed
// result is what a live view would show rather than a re-echo of the new file.
func replayDiff(oldSnap, newSnap *roster.Snapshot, cs *listdiff.ChangeSet) []*roster.Item {
	result := make([]*roster.Item, len(oldSnap.Items))
	for i := range oldSnap.Items {
		it := oldSnap.Items[i]
		result[i] = &it
	}
	// The lists were just reconciled, so the replay cannot mismatch.
	_ = listdiff.Apply(cs, &result, newSnap.Items,
		func(n roster.Item) *roster.Item { return &n },
		func(old *roster.Item, n roster.Item) { *old = n },
		nil,
	)
	return result
}

// printDiff renders the change set for humans. Removals carry the old list's
// titles; everything else reads from the new list.
func printDiff(w io.Writer, oldSnap, newSnap *roster.Snapshot, cs *listdiff.ChangeSet) {
	if cs.Empty() {
		fmt.Fprintln(w, "no changes")
		return
	}

	removeStyle := lipgloss.NewStyle().Foreground(styles.Rose)
	insertStyle := lipgloss.NewStyle().Foreground(styles.Emerald)
	moveStyle := lipgloss.NewStyle().Foreground(styles.Cyan)
	updateStyle := lipgloss.NewStyle().Foreground(styles.Amber)

	for _, r := range cs.Removals {
		it := oldSnap.Items[r.Index]
		fmt.Fprintln(w, removeStyle.Render(fmt.Sprintf("- [%d] %s", r.Index, it.Title)))
	}
	for _, ins := range cs.Insertions {
		it := newSnap.Items[ins.Index]
		fmt.Fprintln(w, insertStyle.Render(fmt.Sprintf("+ [%d] %s", ins.Index, it.Title)))
	}
	for _, m := range cs.Moves {
		it := newSnap.Items[m.NewIndex]
		fmt.Fprintln(w, moveStyle.Render(fmt.Sprintf("> [%d -> %d] %s", m.OldIndex, m.NewIndex, it.Title)))
	}
	for _, u := range cs.Updates {
		it := newSnap.Items[u.NewIndex]
		fmt.Fprintln(w, updateStyle.Render(fmt.Sprintf("~ [%d] %s", u.NewIndex, it.Title)))
	}

	fmt.Fprintln(w, cs.Summary())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "result:")
	for i, it := range replayDiff(oldSnap, newSnap, cs) {
		fmt.Fprintf(w, "  [%d] %s\n", i, it.Title)
	}
}
