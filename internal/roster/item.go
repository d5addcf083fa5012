// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package roster defines the identified list items relist reconciles.
package roster

// =============================================================================
// ITEM STATUS
// =============================================================================

// Status represents the state-of-play of a roster item.
type Status string

const (
	// StatusOpen indicates the item is pending
	StatusOpen Status = "open"

	// StatusActive indicates the item is being worked
	StatusActive Status = "active"

	// StatusDone indicates the item is finished
	StatusDone Status = "done"

	// StatusBlocked indicates the item is waiting on something else
	StatusBlocked Status = "blocked"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// =============================================================================
// ITEM
// =============================================================================

// Item is a single roster entry. ID is the item's identity across snapshots;
// everything else is content.
type Item struct {
	// ID is a stable identifier, assigned at load time if the snapshot
	// doesn't carry one
	ID string `toml:"id" json:"id"`

	// Title is the display name
	Title string `toml:"title" json:"title"`

	// Status is the item's current state
	Status Status `toml:"status" json:"status"`

	// Priority orders items by importance (lower is more important)
	Priority int `toml:"priority" json:"priority,omitempty"`

	// Note is free-form annotation text
	Note string `toml:"note" json:"note,omitempty"`
}

// Equal reports whether two items have the same content, ignoring identity.
// This is the comparison handed to the matcher: items sharing an ID but
// failing Equal show up as updates.
func (it Item) Equal(other Item) bool {
	return it.Title == other.Title &&
		it.Status == other.Status &&
		it.Priority == other.Priority &&
		it.Note == other.Note
}
