// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helper functions.

# Request Logging

RequestLogger is standard func(http.Handler) http.Handler middleware,
mounted router-wide:

	r.Use(middleware.RequestLogger)

Logs request start (method, path, remote) and completion (duration_ms).

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
	middleware.FieldErrorResponse(w, http.StatusBadRequest, "faction is required", "faction")

Parse JSON request bodies:

	var req models.CreatePlayerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		...
	}

CORS is handled by rs/cors in the router rather than here.
*/
package middleware
