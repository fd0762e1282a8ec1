// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p        Server port (default 5000)
	-d        Database URL (postgres) or file path (sqlite)
	-t        Database type: sqlite (default) or postgres
	-s        Sessions JSON file path (default ./data/sessions.json)
	-origins  Comma-separated allowed CORS origins (default *)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SESSIONS_PATH   → -s
	ALLOWED_ORIGINS → -origins

CLI flags take precedence. A .env file is loaded by main before parsing.

# Validation

ParseFlags returns an error if the database type is unknown, or if the
type is postgres and no database URL was provided. The sqlite type
defaults its path to ./data/twilight.db.
*/
package cliparse
