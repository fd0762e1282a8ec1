// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/cycoconutz/Twilight-Votes/catalog"
	"github.com/cycoconutz/Twilight-Votes/middleware"
)

// CatalogHandler serves the read-only display data. Nothing here
// mutates anything.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Factions handles GET /catalog/factions
func (h *CatalogHandler) Factions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, catalog.Factions)
}

// Agendas handles GET /catalog/agendas
func (h *CatalogHandler) Agendas(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, catalog.Agendas)
}

// Agenda handles GET /catalog/agendas/{name}, looking up one agenda's
// effect text by its exact name. Session agenda selections are free
// text, so misses are expected and answer 404.
func (h *CatalogHandler) Agenda(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	// Agenda names contain spaces; chi hands back the escaped segment.
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	agenda := catalog.FindAgenda(name)
	if agenda == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Agenda not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, agenda)
}
