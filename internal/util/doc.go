// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the relist application.
//
// This package contains common helper functions used throughout the
// application for string display, type conversion, and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: Display-width aware truncation with ellipsis
//   - PadRight: Display-width aware padding
//
// Type Conversion:
//   - IntToString: Numeric to string conversion
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
package util
