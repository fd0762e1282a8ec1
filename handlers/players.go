// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cycoconutz/Twilight-Votes/engine"
	"github.com/cycoconutz/Twilight-Votes/middleware"
	"github.com/cycoconutz/Twilight-Votes/models"
	"github.com/cycoconutz/Twilight-Votes/store"
	"github.com/cycoconutz/Twilight-Votes/validate"
)

// StoreResolver picks the player backend for a request: the relational
// table for /players, or the session-scoped collection for
// /sessions/{sid}/players.
type StoreResolver func(r *http.Request) store.PlayerStore

// PlayerHandler serves the Player CRUD surface and the vote intents on
// top of it. The same handler is mounted once per backend; only the
// resolver differs.
type PlayerHandler struct {
	resolve StoreResolver
}

func NewPlayerHandler(resolve StoreResolver) *PlayerHandler {
	return &PlayerHandler{resolve: resolve}
}

// storeError translates backend failures into the HTTP error taxonomy.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrUnknownSession):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, store.ErrSessionFull):
		middleware.ErrorResponse(w, http.StatusConflict, "Session already has the maximum number of players")
	default:
		slog.Error("player store operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
	}
}

// playerID parses the {id} path segment. A non-numeric id is treated
// the same as an unknown one.
func playerID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeBody parses JSON and writes the 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := middleware.ParseJSONBody(r, v); err != nil {
		if fieldErr := validate.FromJSON(err); fieldErr != nil {
			middleware.FieldErrorResponse(w, http.StatusBadRequest, fieldErr.Message, fieldErr.Field)
		} else {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		}
		return false
	}
	return true
}

// List handles GET /players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.resolve(r).List(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, players)
}

// Get handles GET /players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	player, err := h.resolve(r).Get(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}
	if player == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, player)
}

// Create handles POST /players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlayerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.CreatePlayer(req); err != nil {
		middleware.FieldErrorResponse(w, http.StatusBadRequest, err.Message, err.Field)
		return
	}

	player, err := h.resolve(r).Create(r.Context(), models.Player{
		Name:         req.Name,
		Faction:      *req.Faction,
		TotalVotes:   req.TotalVotes,
		Agenda1Votes: req.Agenda1Votes,
		Agenda2Votes: req.Agenda2Votes,
	})
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("player created", "player_id", player.ID, "faction", player.Faction)
	middleware.JSONResponse(w, http.StatusCreated, player)
}

// Update handles PUT /players/{id}, the raw patch-merge primitive.
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	var patch models.PlayerPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	if err := validate.PlayerPatch(patch); err != nil {
		middleware.FieldErrorResponse(w, http.StatusBadRequest, err.Message, err.Field)
		return
	}

	player, err := h.resolve(r).Update(r.Context(), id, patch)
	if err != nil {
		storeError(w, err)
		return
	}
	if player == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, player)
}

// Delete handles DELETE /players/{id}. Idempotent: deleting an absent
// or malformed id still answers 204.
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(r)
	if ok {
		if err := h.resolve(r).Delete(r.Context(), id); err != nil {
			storeError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// Cast handles POST /players/{id}/cast: move delta votes between the
// total pool and one agenda bucket. A rider on the slot makes this a
// no-op that still answers 200 with the unchanged player.
func (h *PlayerHandler) Cast(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	var req models.CastVotesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.AgendaSlot(req.Agenda); err != nil {
		middleware.FieldErrorResponse(w, http.StatusBadRequest, err.Message, err.Field)
		return
	}

	s := h.resolve(r)
	current, err := s.Get(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}
	if current == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	next := engine.CastOrRetract(*current, engine.Slot(req.Agenda), req.Delta)
	patch := models.PlayerPatch{
		TotalVotes:   &next.TotalVotes,
		Agenda1Votes: &next.Agenda1Votes,
		Agenda2Votes: &next.Agenda2Votes,
	}

	player, err := s.Update(r.Context(), id, patch)
	if err != nil {
		storeError(w, err)
		return
	}
	if player == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, player)
}

// Reset handles POST /players/{id}/reset: zero every counter and rider
// flag, keeping name and faction.
func (h *PlayerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	s := h.resolve(r)
	current, err := s.Get(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}
	if current == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	next := engine.Reset(*current)
	patch := models.PlayerPatch{
		TotalVotes:   &next.TotalVotes,
		Agenda1Votes: &next.Agenda1Votes,
		Agenda2Votes: &next.Agenda2Votes,
		Agenda1Rider: &next.Agenda1Rider,
		Agenda2Rider: &next.Agenda2Rider,
	}

	player, err := s.Update(r.Context(), id, patch)
	if err != nil {
		storeError(w, err)
		return
	}
	if player == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, player)
}

// Rider handles PUT /players/{id}/rider: toggle one agenda's lock flag
// without touching any count.
func (h *PlayerHandler) Rider(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	var req models.SetRiderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.AgendaSlot(req.Agenda); err != nil {
		middleware.FieldErrorResponse(w, http.StatusBadRequest, err.Message, err.Field)
		return
	}

	s := h.resolve(r)
	current, err := s.Get(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}
	if current == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	next := engine.SetRider(*current, engine.Slot(req.Agenda), req.Enabled)
	patch := models.PlayerPatch{
		Agenda1Rider: &next.Agenda1Rider,
		Agenda2Rider: &next.Agenda2Rider,
	}

	player, err := s.Update(r.Context(), id, patch)
	if err != nil {
		storeError(w, err)
		return
	}
	if player == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, player)
}
