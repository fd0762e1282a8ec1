// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/cycoconutz/Twilight-Votes/cliparse"
	"github.com/cycoconutz/Twilight-Votes/handlers"
	"github.com/cycoconutz/Twilight-Votes/middleware"
	"github.com/cycoconutz/Twilight-Votes/store"
)

// New builds the full route table over both backends: the relational
// player table at /players and the session-scoped collections at
// /sessions/{sid}/players.
func New(dbConn *sql.DB, sessions *store.SessionStore, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Heartbeat("/health"))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	// Initialize handlers.
	sqlStore := store.NewSQLStore(dbConn)
	tablePlayers := handlers.NewPlayerHandler(func(*http.Request) store.PlayerStore {
		return sqlStore
	})
	sessionPlayers := handlers.NewPlayerHandler(func(req *http.Request) store.PlayerStore {
		return sessions.Players(chi.URLParam(req, "sid"))
	})
	sessionHandler := handlers.NewSessionHandler(sessions)
	catalogHandler := handlers.NewCatalogHandler()

	// Player CRUD over the relational backend.
	r.Route("/players", playerRoutes(tablePlayers))

	// Sessions and their scoped player collections.
	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", sessionHandler.List)
		r.Post("/", sessionHandler.Create)
		r.Route("/{sid}", func(r chi.Router) {
			r.Get("/", sessionHandler.Get)
			r.Put("/", sessionHandler.Update)
			r.Delete("/", sessionHandler.Delete)
			r.Route("/players", playerRoutes(sessionPlayers))
		})
	})

	// Read-only display catalogs.
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/factions", catalogHandler.Factions)
		r.Get("/agendas", catalogHandler.Agendas)
		r.Get("/agendas/{name}", catalogHandler.Agenda)
	})

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("twilight-votes API v1"))
	})

	return r
}

// playerRoutes mounts the full player surface; the handler's resolver
// decides which backend it hits.
func playerRoutes(h *handlers.PlayerHandler) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/cast", h.Cast)
		r.Post("/{id}/reset", h.Reset)
		r.Put("/{id}/rider", h.Rider)
	}
}
