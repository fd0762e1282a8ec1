// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes.

# Route Registration

New returns a chi router with all endpoints mounted:

	handler := router.New(dbConn, sessions, cfg)

# Endpoints

Health:

	GET /health

Player CRUD (relational backend):

	GET    /players
	POST   /players
	GET    /players/{id}
	PUT    /players/{id}
	DELETE /players/{id}

Vote intents on a player:

	POST /players/{id}/cast   - move votes between pool and a bucket
	POST /players/{id}/reset  - zero counters and riders
	PUT  /players/{id}/rider  - toggle an agenda lock

Sessions (local-persistence backend):

	GET    /sessions
	POST   /sessions
	GET    /sessions/{sid}
	PUT    /sessions/{sid}
	DELETE /sessions/{sid}

The entire player surface is mounted a second time under
/sessions/{sid}/players, scoped to that session's collection.

Catalogs (read-only):

	GET /catalog/factions
	GET /catalog/agendas
	GET /catalog/agendas/{name}

# Middleware

chi RequestID, RealIP, Recoverer, and Heartbeat; slog request logging
from the middleware package; CORS from rs/cors, configured with the
allowed origins of cliparse.Config.
*/
package router
