// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cycoconutz/Twilight-Votes/middleware"
	"github.com/cycoconutz/Twilight-Votes/models"
	"github.com/cycoconutz/Twilight-Votes/store"
	"github.com/cycoconutz/Twilight-Votes/validate"
)

// SessionHandler serves the session collection of the local-persistence
// mode.
type SessionHandler struct {
	sessions *store.SessionStore
}

func NewSessionHandler(sessions *store.SessionStore) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// List handles GET /sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List(r.Context())
	if err != nil {
		slog.Error("failed to list sessions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sessions)
}

// Create handles POST /sessions. Every new session is seeded with two
// default players.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.CreateSession(req); err != nil {
		middleware.FieldErrorResponse(w, http.StatusBadRequest, err.Message, err.Field)
		return
	}

	session, err := h.sessions.Create(r.Context(), req.Name)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save sessions")
		return
	}

	slog.Info("session created", "session_id", session.ID, "name", session.Name)
	middleware.JSONResponse(w, http.StatusCreated, session)
}

// Get handles GET /sessions/{sid}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Get(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		slog.Error("failed to get session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, session)
}

// Update handles PUT /sessions/{sid}: rename or repoint the agenda
// selections. An empty agenda name clears the slot.
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.SessionPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	session, err := h.sessions.Update(r.Context(), chi.URLParam(r, "sid"), patch)
	if err != nil {
		slog.Error("failed to update session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save sessions")
		return
	}
	if session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, session)
}

// Delete handles DELETE /sessions/{sid}. Idempotent.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.Context(), chi.URLParam(r, "sid")); err != nil {
		slog.Error("failed to delete session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save sessions")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
