// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for relist.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdWatch Command = iota // Default: watch a roster file in the TUI
	CmdDiff
	CmdHistory
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON  bool // Output in JSON format
	Quiet bool

	// Watch: the roster file to observe
	Path string

	// Diff: the two snapshots to compare
	OldPath string
	NewPath string

	// History: how many revisions to show
	Limit int

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `relist - live roster viewer with incremental list updates

Relist watches a roster file (TOML or JSON) and keeps the displayed
list reconciled with it. Edits animate as removals, insertions, moves
and in-place updates instead of a full redraw.

Usage:
  relist [file]               Watch a roster file (default: from config)
  relist diff <old> <new>     Compare two snapshots and print the changes
  relist history              Show recent reconciliation revisions
  relist version, -v          Show version information
  relist help, -h             Show this help

Flags:
  --json                      Machine-readable output (diff, history, version)
  --limit N                   Revisions to show for history (default: 20)
  --quiet                     Suppress non-essential output

Examples:
  relist todo.toml
  relist diff yesterday.toml today.toml
  relist diff old.json new.json --json
  relist history --limit 5

Configuration lives in ~/.relist/config.toml. Environment overrides:
  RELIST_ROSTER               Roster path when none is given
  RELIST_THEME                dark, light or auto
  RELIST_NO_HISTORY           Disable the revision journal
  RELIST_NO_ANIMATIONS        Disable replay highlights
`

// =============================================================================
// PARSING
// =============================================================================

// Parse inspects os.Args and routes to a command. Global flags may appear
// anywhere; the first positional argument selects the command, defaulting to
// the watch TUI.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs is Parse over an explicit argument list.
func ParseArgs(args []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(args)

	if len(remaining) == 0 {
		return CmdWatch, parsed
	}

	first := remaining[0]
	cmd := strings.ToLower(first)
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "watch":
		if len(remaining) > 0 {
			parsed.Path = remaining[0]
		}
		return CmdWatch, parsed

	case "diff":
		if len(remaining) > 0 {
			parsed.OldPath = remaining[0]
		}
		if len(remaining) > 1 {
			parsed.NewPath = remaining[1]
		}
		return CmdDiff, parsed

	case "history":
		return CmdHistory, parsed

	case "version", "-v", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		// Bare path: watch it.
		parsed.Path = first
		return CmdWatch, parsed
	}
}

// parseGlobalFlags extracts flags valid for every command.
func parseGlobalFlags(args []string) ([]string, Args) {
	parsed := Args{Limit: 20}
	var remaining []string

	p := NewArgParser(args)
	parsed.JSON = p.BoolFlag("json")
	parsed.Quiet = p.BoolFlag("quiet") || p.BoolFlag("q")
	parsed.Limit = p.FlagIntOrDefault("limit", 20)

	remaining = p.PositionalAll()
	return remaining, parsed
}

// =============================================================================
// SIMPLE HANDLERS
// =============================================================================

// VersionData is the JSON payload for the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// HandleVersion handles the "version" command.
func HandleVersion(args Args) {
	if args.JSON {
		resp := NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		})
		resp.Print()
		return
	}
	fmt.Printf("relist %s (commit %s, built %s, %s)\n",
		Version, GitCommit, BuildDate, runtime.Version())
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}
