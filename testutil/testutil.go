// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/cycoconutz/Twilight-Votes/cliparse"
	"github.com/cycoconutz/Twilight-Votes/db"
	"github.com/cycoconutz/Twilight-Votes/router"
	"github.com/cycoconutz/Twilight-Votes/store"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second connection would see a different empty :memory: database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// SetupSessionStore creates a session store backed by a temp file
func SetupSessionStore(t *testing.T) *store.SessionStore {
	t.Helper()

	return store.NewSessionStore(filepath.Join(t.TempDir(), "sessions.json"))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           5000,
		DatabaseType:   "sqlite",
		DatabaseURL:    ":memory:",
		SessionsPath:   "sessions.json",
		AllowedOrigins: []string{"*"},
	}
}

// SetupRouter builds the full route table over fresh test backends
func SetupRouter(t *testing.T) (http.Handler, *sql.DB, *store.SessionStore) {
	t.Helper()

	conn := SetupTestDB(t)
	sessions := SetupSessionStore(t)
	return router.New(conn, sessions, GetTestConfig()), conn, sessions
}

// CreateTestPlayer inserts a player row directly and returns its id
func CreateTestPlayer(t *testing.T, conn *sql.DB, name, faction string, totalVotes int) int {
	t.Helper()

	var id int
	err := conn.QueryRow(
		`INSERT INTO players (name, faction, total_votes) VALUES ($1, $2, $3) RETURNING id`,
		name, faction, totalVotes,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
