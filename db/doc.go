// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles relational schema creation.

# Schema Creation

CreateSchema initializes the players table for the configured driver:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Drivers

Two dialects are supported, matching the -t flag:

  - sqlite (modernc.org/sqlite): INTEGER PRIMARY KEY AUTOINCREMENT so ids
    stay monotonic and are never reused after deletion
  - postgres (lib/pq): SERIAL, which draws from a sequence with the same
    never-reuse property

# Tables

One table: players. Counters default to 0, rider flags to false, name to
'Player'. Sessions are not relational; they persist as one JSON blob via
the store package.
*/
package db
