// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Types

  - PlayerHandler: Player CRUD plus the vote intents (cast, reset,
    rider)
  - SessionHandler: Session CRUD for the local-persistence mode
  - CatalogHandler: read-only faction and agenda catalogs

# Backends

PlayerHandler is backend-agnostic. It takes a StoreResolver that picks
the store per request, and the router mounts it twice:

	/players                  → relational table (SQLStore)
	/sessions/{sid}/players   → that session's collection

Handlers compose validate → engine → store: the payload is validated
first (400 {message, field}, nothing written), the vote transfer engine
computes the next player state, and the store commits it through the
Update patch primitive.

# Error Contract

	400  validation failure, body {"message": ..., "field": ...}
	404  unknown player or session id on reads, updates, and intents
	409  create would exceed the 8-player session ceiling
	204  delete, always, including absent ids
	500  the backing medium failed; the error is logged, not retried
*/
package handlers
