// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// driver is "sqlite" or "postgres"; the two dialects disagree on how to
// declare an id column whose values are never reused after deletion.
func CreateSchema(db *sql.DB, driver string) error {
	schema, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("unknown database driver %q", driver)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

var schemas = map[string]string{
	"sqlite":   sqliteSchema,
	"postgres": postgresSchema,
}

// AUTOINCREMENT forces sqlite to allocate monotonically increasing ids
// and never hand a deleted id back out.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS players (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL DEFAULT 'Player',
    faction TEXT NOT NULL,
    total_votes INTEGER NOT NULL DEFAULT 0,
    agenda1_votes INTEGER NOT NULL DEFAULT 0,
    agenda2_votes INTEGER NOT NULL DEFAULT 0,
    agenda1_rider INTEGER NOT NULL DEFAULT 0,
    agenda2_rider INTEGER NOT NULL DEFAULT 0
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS players (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL DEFAULT 'Player',
    faction TEXT NOT NULL,
    total_votes INTEGER NOT NULL DEFAULT 0,
    agenda1_votes INTEGER NOT NULL DEFAULT 0,
    agenda2_votes INTEGER NOT NULL DEFAULT 0,
    agenda1_rider BOOLEAN NOT NULL DEFAULT FALSE,
    agenda2_rider BOOLEAN NOT NULL DEFAULT FALSE
);
`
