// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli implements command-line parsing and the non-TUI commands for
relist.

Parse routes os.Args to a Command; main dispatches. The watch TUI itself
lives in the watchui package; this package owns the offline commands:

	relist diff <old> <new>   HandleDiff - reconcile two snapshots and print
	relist history            HandleHistory - list journaled revisions
	relist version            HandleVersion
	relist help               HandleHelp

Every command supports --json for machine-readable output via JSONResponse.
Argument parsing goes through ArgParser, which handles --flag value,
--flag=value and boolean flags uniformly.
*/
package cli
