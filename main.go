// relist TUI - live roster viewer with incremental list updates.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/relist-tui/internal/cli"
	"github.com/jeranaias/relist-tui/internal/config"
	"github.com/jeranaias/relist-tui/internal/history"
	"github.com/jeranaias/relist-tui/internal/ui/styles"
	"github.com/jeranaias/relist-tui/internal/ui/watchui"
	"github.com/jeranaias/relist-tui/internal/watch"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdWatch:
		runWatch(args)
	case cli.CmdDiff:
		if err := cli.HandleDiff(args); err != nil {
			cli.PrintError(args, "diff", err)
			os.Exit(1)
		}
	case cli.CmdHistory:
		if err := cli.HandleHistory(args); err != nil {
			cli.PrintError(args, "history", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// runWatch starts the watch TUI on the given roster file.
func runWatch(args cli.Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path := args.Path
	if path == "" {
		path = cfg.RosterPath
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no roster file given")
		fmt.Fprintln(os.Stderr, "Pass a path (relist todo.toml), set roster_path in ~/.relist/config.toml or export RELIST_ROSTER.")
		os.Exit(1)
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	watcher, err := watch.New(path, cfg.Debounce())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := watcher.Watch(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	// The journal is best-effort: a broken database disables history for the
	// session instead of blocking the watch.
	var journal *history.Journal
	if cfg.History.Enabled {
		dbPath, err := cfg.HistoryPath()
		if err == nil {
			journal, err = history.Open(dbPath)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
			journal = nil
		}
	}
	if journal != nil {
		defer journal.Close()
	}

	m := watchui.New(styles.NewTheme(), path, watcher, journal)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
