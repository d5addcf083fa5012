// history_cmd.go - The history command: list recent reconciliation revisions.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jeranaias/relist-tui/internal/config"
	"github.com/jeranaias/relist-tui/internal/history"
)

// =============================================================================
// HANDLER
// =============================================================================

// HandleHistory handles the "history" command.
func HandleHistory(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled in the configuration")
	}

	dbPath, err := cfg.HistoryPath()
	if err != nil {
		return err
	}

	journal, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer journal.Close()

	revisions, err := journal.Recent(args.Limit)
	if err != nil {
		return err
	}

	if args.JSON {
		resp := NewJSONResponse("history", revisions)
		return resp.Print()
	}

	printRevisions(os.Stdout, revisions)
	return nil
}

// printRevisions renders the revision table, newest first.
func printRevisions(w io.Writer, revisions []history.Revision) {
	if len(revisions) == 0 {
		fmt.Fprintln(w, "no revisions recorded")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tCHANGES\tITEMS\tSOURCE")
	for _, rev := range revisions {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			rev.TakenAt.Local().Format("2006-01-02 15:04:05"),
			revisionSummary(rev),
			rev.ItemCount,
			rev.Source,
		)
	}
	tw.Flush()
}

// revisionSummary mirrors the change-set summary format for stored counts.
func revisionSummary(rev history.Revision) string {
	if rev.Empty() {
		return "no changes"
	}
	s := ""
	if rev.Removals > 0 {
		s += fmt.Sprintf("-%d ", rev.Removals)
	}
	if rev.Insertions > 0 {
		s += fmt.Sprintf("+%d ", rev.Insertions)
	}
	if rev.Updates > 0 {
		s += fmt.Sprintf("~%d ", rev.Updates)
	}
	if rev.Moves > 0 {
		s += fmt.Sprintf("moved:%d ", rev.Moves)
	}
	return s[:len(s)-1]
}
