// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cycoconutz/Twilight-Votes/models"
)

// SessionStore owns the local-persistence mode: every session lives in
// one JSON blob at a fixed path, read in full at startup and rewritten
// in full after every mutation. Competing writers are last-write-wins by
// design.
type SessionStore struct {
	mu       sync.Mutex
	path     string
	sessions []models.Session // insertion order
}

// NewSessionStore loads the session collection from path. A missing,
// unreadable, or corrupt file degrades to an empty collection rather
// than failing startup.
func NewSessionStore(path string) *SessionStore {
	s := &SessionStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read sessions file, starting empty", "path", path, "error", err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.sessions); err != nil {
		slog.Warn("failed to parse sessions file, starting empty", "path", path, "error", err)
		s.sessions = nil
	}
	return s
}

// persist rewrites the whole collection. Callers hold s.mu. The write
// goes through a temp file and a rename so a crash mid-write leaves the
// previous blob intact.
func (s *SessionStore) persist() error {
	data, err := json.Marshal(s.sessions)
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create sessions directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write sessions file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace sessions file: %w", err)
	}
	return nil
}

func (s *SessionStore) find(id string) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// List returns all sessions in insertion order. Never nil.
func (s *SessionStore) List(ctx context.Context) ([]models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Session, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = copySession(sess)
	}
	return out, nil
}

// Get returns the session with the given id, or (nil, nil) when absent.
func (s *SessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(id)
	if i < 0 {
		return nil, nil
	}
	sess := copySession(s.sessions[i])
	return &sess, nil
}

// Create stores a new named session seeded with two default players
// (ids 1 and 2, empty faction, zero counters).
func (s *SessionStore) Create(ctx context.Context, name string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := models.Session{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UnixMilli(),
		Players: []models.Player{
			{ID: 1, Name: "Player 1"},
			{ID: 2, Name: "Player 2"},
		},
	}
	s.sessions = append(s.sessions, sess)

	if err := s.persist(); err != nil {
		return nil, err
	}
	out := copySession(sess)
	return &out, nil
}

// Update merges the patch into the session's metadata. Unknown ids are a
// no-op, reported as (nil, nil).
func (s *SessionStore) Update(ctx context.Context, id string, patch models.SessionPatch) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(id)
	if i < 0 {
		return nil, nil
	}
	s.sessions[i] = s.sessions[i].Merge(patch)

	if err := s.persist(); err != nil {
		return nil, err
	}
	out := copySession(s.sessions[i])
	return &out, nil
}

// Delete removes the session. Idempotent; an absent id is a no-op.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(id)
	if i < 0 {
		return nil
	}
	s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
	return s.persist()
}

// Players returns a PlayerStore scoped to one session's collection.
// The session is looked up per operation, so a view taken before the
// session was deleted reports ErrUnknownSession afterwards.
func (s *SessionStore) Players(sessionID string) PlayerStore {
	return &sessionPlayers{store: s, sessionID: sessionID}
}

func copySession(sess models.Session) models.Session {
	players := make([]models.Player, len(sess.Players))
	copy(players, sess.Players)
	sess.Players = players
	return sess
}

// sessionPlayers implements PlayerStore over one session's player slice.
// Ids are session-scoped: max(existing)+1, so removing player 2 from
// {1,2,3} and adding again yields 4, not a reused 2.
type sessionPlayers struct {
	store     *SessionStore
	sessionID string
}

func (sp *sessionPlayers) session() (*models.Session, error) {
	i := sp.store.find(sp.sessionID)
	if i < 0 {
		return nil, ErrUnknownSession
	}
	return &sp.store.sessions[i], nil
}

func (sp *sessionPlayers) List(ctx context.Context) ([]models.Player, error) {
	sp.store.mu.Lock()
	defer sp.store.mu.Unlock()

	sess, err := sp.session()
	if err != nil {
		return nil, err
	}
	players := make([]models.Player, len(sess.Players))
	copy(players, sess.Players)
	return players, nil
}

func (sp *sessionPlayers) Get(ctx context.Context, id int) (*models.Player, error) {
	sp.store.mu.Lock()
	defer sp.store.mu.Unlock()

	sess, err := sp.session()
	if err != nil {
		return nil, err
	}
	for _, p := range sess.Players {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (sp *sessionPlayers) Create(ctx context.Context, p models.Player) (*models.Player, error) {
	sp.store.mu.Lock()
	defer sp.store.mu.Unlock()

	sess, err := sp.session()
	if err != nil {
		return nil, err
	}
	if len(sess.Players) >= models.MaxPlayers {
		return nil, ErrSessionFull
	}

	maxID := 0
	for _, existing := range sess.Players {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	if p.Name == "" {
		p.Name = fmt.Sprintf("Player %d", len(sess.Players)+1)
	}
	sess.Players = append(sess.Players, p)

	if err := sp.store.persist(); err != nil {
		return nil, err
	}
	out := p
	return &out, nil
}

func (sp *sessionPlayers) Update(ctx context.Context, id int, patch models.PlayerPatch) (*models.Player, error) {
	sp.store.mu.Lock()
	defer sp.store.mu.Unlock()

	sess, err := sp.session()
	if err != nil {
		return nil, err
	}
	for i, p := range sess.Players {
		if p.ID != id {
			continue
		}
		sess.Players[i] = p.Merge(patch)
		if err := sp.store.persist(); err != nil {
			return nil, err
		}
		out := sess.Players[i]
		return &out, nil
	}
	return nil, nil
}

func (sp *sessionPlayers) Delete(ctx context.Context, id int) error {
	sp.store.mu.Lock()
	defer sp.store.mu.Unlock()

	sess, err := sp.session()
	if err != nil {
		return err
	}
	for i, p := range sess.Players {
		if p.ID == id {
			sess.Players = append(sess.Players[:i], sess.Players[i+1:]...)
			return sp.store.persist()
		}
	}
	return nil
}
