// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists a journal of applied roster reconciliations.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrClosed is returned when the journal is used after Close.
	ErrClosed = errors.New("history journal is closed")
)

// =============================================================================
// REVISION
// =============================================================================

// Revision summarizes one applied change set.
type Revision struct {
	// ID is the journal's row ID, assigned on Record
	ID int64

	// TakenAt is when the reconciliation was applied
	TakenAt time.Time

	// Source is the snapshot path the new list came from
	Source string

	// ItemCount is the list length after the reconciliation
	ItemCount int

	// Change counts
	Removals   int
	Insertions int
	Moves      int
	Updates    int
}

// Empty reports whether the revision recorded no changes.
func (r Revision) Empty() bool {
	return r.Removals == 0 && r.Insertions == 0 && r.Moves == 0 && r.Updates == 0
}

// =============================================================================
// JOURNAL
// =============================================================================

// schema is created on open; the journal is append-only.
const schema = `
CREATE TABLE IF NOT EXISTS revisions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	taken_at    INTEGER NOT NULL,
	source      TEXT NOT NULL,
	item_count  INTEGER NOT NULL,
	removals    INTEGER NOT NULL,
	insertions  INTEGER NOT NULL,
	moves       INTEGER NOT NULL,
	updates     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_revisions_taken_at ON revisions(taken_at);
`

// Journal records applied reconciliations in a SQLite database.
type Journal struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	// SQLite only supports one writer at a time; keep a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Record appends a revision to the journal and fills in its ID.
func (j *Journal) Record(rev *Revision) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return ErrClosed
	}

	if rev.TakenAt.IsZero() {
		rev.TakenAt = time.Now()
	}

	res, err := j.db.Exec(
		`INSERT INTO revisions (taken_at, source, item_count, removals, insertions, moves, updates)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rev.TakenAt.UnixMilli(), rev.Source, rev.ItemCount,
		rev.Removals, rev.Insertions, rev.Moves, rev.Updates,
	)
	if err != nil {
		return fmt.Errorf("failed to record revision: %w", err)
	}

	rev.ID, err = res.LastInsertId()
	return err
}

// Recent returns up to n revisions, newest first.
func (j *Journal) Recent(n int) ([]Revision, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return nil, ErrClosed
	}

	rows, err := j.db.Query(
		`SELECT id, taken_at, source, item_count, removals, insertions, moves, updates
		 FROM revisions ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query revisions: %w", err)
	}
	defer rows.Close()

	var revs []Revision
	for rows.Next() {
		var rev Revision
		var takenAt int64
		if err := rows.Scan(&rev.ID, &takenAt, &rev.Source, &rev.ItemCount,
			&rev.Removals, &rev.Insertions, &rev.Moves, &rev.Updates); err != nil {
			return nil, err
		}
		rev.TakenAt = time.UnixMilli(takenAt)
		revs = append(revs, rev)
	}
	return revs, rows.Err()
}

// Close releases the database handle. Further calls return ErrClosed.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}
