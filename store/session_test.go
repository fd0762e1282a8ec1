// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cycoconutz/Twilight-Votes/models"
	"github.com/cycoconutz/Twilight-Votes/store"
	"github.com/cycoconutz/Twilight-Votes/testutil"
)

func TestSessionCreateSeedsTwoPlayers(t *testing.T) {
	s := testutil.SetupSessionStore(t)
	ctx := context.Background()

	sess, err := s.Create(ctx, "Thursday game")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if sess.ID == "" {
		t.Error("session id is empty")
	}
	if sess.CreatedAt <= 0 {
		t.Errorf("createdAt = %d, want epoch millis", sess.CreatedAt)
	}
	if len(sess.Players) != 2 {
		t.Fatalf("seeded with %d players, want 2", len(sess.Players))
	}
	for i, p := range sess.Players {
		want := models.Player{ID: i + 1, Name: fmt.Sprintf("Player %d", i+1)}
		if p != want {
			t.Errorf("players[%d] = %+v, want %+v", i, p, want)
		}
	}
}

func TestSessionGetUnknown(t *testing.T) {
	s := testutil.SetupSessionStore(t)

	sess, err := s.Get(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if sess != nil {
		t.Errorf("Get unknown id = %+v, want nil", sess)
	}
}

func TestSessionUpdateMerge(t *testing.T) {
	s := testutil.SetupSessionStore(t)
	ctx := context.Background()

	sess, err := s.Create(ctx, "original")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	agenda := "Ixthian Artifact"
	updated, err := s.Update(ctx, sess.ID, models.SessionPatch{Agenda1Name: &agenda})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Agenda1Name != "Ixthian Artifact" {
		t.Errorf("agenda1Name = %q, want Ixthian Artifact", updated.Agenda1Name)
	}
	if updated.Name != "original" || len(updated.Players) != 2 {
		t.Errorf("unpatched fields changed: %+v", updated)
	}

	// Empty string clears the slot
	cleared := ""
	updated, err = s.Update(ctx, sess.ID, models.SessionPatch{Agenda1Name: &cleared})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Agenda1Name != "" {
		t.Errorf("agenda1Name = %q, want empty after clearing", updated.Agenda1Name)
	}

	name := "renamed"
	if _, err := s.Update(ctx, "missing", models.SessionPatch{Name: &name}); err != nil {
		t.Fatalf("Update of unknown id failed: %v", err)
	}
}

func TestSessionDeleteIdempotent(t *testing.T) {
	s := testutil.SetupSessionStore(t)
	ctx := context.Background()

	sess, err := s.Create(ctx, "doomed")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := s.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("first Delete failed: %v", err)
	}
	if err := s.Delete(ctx, sess.ID); err != nil {
		t.Errorf("second Delete failed: %v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List after delete has %d sessions, want 0", len(list))
	}
}

func TestSessionPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	ctx := context.Background()

	first := store.NewSessionStore(path)
	sess, err := first.Create(ctx, "persisted")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	votes := 7
	if _, err := first.Players(sess.ID).Update(ctx, 1, models.PlayerPatch{TotalVotes: &votes}); err != nil {
		t.Fatalf("player Update failed: %v", err)
	}

	// A fresh store reading the same file sees everything
	second := store.NewSessionStore(path)
	got, err := second.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("reloaded store lost the session")
	}
	if got.Name != "persisted" || got.Players[0].TotalVotes != 7 {
		t.Errorf("reloaded session = %+v", got)
	}
}

func TestSessionCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	s := store.NewSessionStore(path)
	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("corrupt file produced %d sessions, want 0", len(list))
	}
}

func TestSessionPlayersIDAssignment(t *testing.T) {
	s := testutil.SetupSessionStore(t)
	ctx := context.Background()

	sess, err := s.Create(ctx, "game")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	players := s.Players(sess.ID)

	third, err := players.Create(ctx, models.Player{})
	if err != nil {
		t.Fatalf("player Create failed: %v", err)
	}
	if third.ID != 3 || third.Name != "Player 3" {
		t.Errorf("third player = %+v, want id 3 name Player 3", third)
	}

	// Removing a middle player must not free its id
	if err := players.Delete(ctx, 2); err != nil {
		t.Fatalf("player Delete failed: %v", err)
	}
	fourth, err := players.Create(ctx, models.Player{Name: "Hacan"})
	if err != nil {
		t.Fatalf("player Create failed: %v", err)
	}
	if fourth.ID != 4 {
		t.Errorf("id after delete = %d, want 4", fourth.ID)
	}

	list, err := players.List(ctx)
	if err != nil {
		t.Fatalf("player List failed: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("List returned %d players, want 3", len(list))
	}
}

func TestSessionPlayerCap(t *testing.T) {
	s := testutil.SetupSessionStore(t)
	ctx := context.Background()

	sess, err := s.Create(ctx, "full table")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	players := s.Players(sess.ID)

	// Two seeded already; fill to the ceiling
	for i := len(sess.Players); i < models.MaxPlayers; i++ {
		if _, err := players.Create(ctx, models.Player{}); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	if _, err := players.Create(ctx, models.Player{}); !errors.Is(err, store.ErrSessionFull) {
		t.Errorf("ninth Create err = %v, want ErrSessionFull", err)
	}
}

func TestSessionPlayersUnknownSession(t *testing.T) {
	s := testutil.SetupSessionStore(t)
	ctx := context.Background()

	sess, err := s.Create(ctx, "transient")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	players := s.Players(sess.ID)
	if err := s.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// A view taken before deletion reports the session as gone
	if _, err := players.List(ctx); !errors.Is(err, store.ErrUnknownSession) {
		t.Errorf("List err = %v, want ErrUnknownSession", err)
	}
	if _, err := players.Get(ctx, 1); !errors.Is(err, store.ErrUnknownSession) {
		t.Errorf("Get err = %v, want ErrUnknownSession", err)
	}
	if _, err := players.Create(ctx, models.Player{}); !errors.Is(err, store.ErrUnknownSession) {
		t.Errorf("Create err = %v, want ErrUnknownSession", err)
	}
	votes := 1
	if _, err := players.Update(ctx, 1, models.PlayerPatch{TotalVotes: &votes}); !errors.Is(err, store.ErrUnknownSession) {
		t.Errorf("Update err = %v, want ErrUnknownSession", err)
	}
	if err := players.Delete(ctx, 1); !errors.Is(err, store.ErrUnknownSession) {
		t.Errorf("Delete err = %v, want ErrUnknownSession", err)
	}
}
