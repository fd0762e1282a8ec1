// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Twilight Votes API server.

Twilight Votes is a vote-tally companion for the agenda phase of a
tabletop strategy game: each player has a pool of votes that can be
moved between two competing agendas, locked out by rider plays, and
reset between rounds. Players live in a relational table; named
sessions with their own player rosters persist to a JSON file.

# Starting the Server

The server runs with no configuration at all (sqlite, port 5000):

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string, or sqlite file path
  - SESSIONS_PATH (-s): Sessions JSON file (default: ./data/sessions.json)
  - ALLOWED_ORIGINS (-origins): CORS origins (default: *)

A .env file in the working directory is loaded before parsing.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (players, sessions, catalogs)
  - router: Route definitions using chi
  - middleware: Logging and JSON helpers
  - models: Request/response types
  - engine: Vote movement, clamping, and rider rules
  - validate: Request validation
  - store: PlayerStore backends (SQL table, session JSON file)
  - catalog: Embedded faction and agenda display data
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
