// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/cycoconutz/Twilight-Votes/models"
)

var (
	// ErrUnknownSession is returned by a session-scoped player store
	// whose session has been deleted or never existed.
	ErrUnknownSession = errors.New("unknown session")

	// ErrSessionFull is returned when a create would push a session past
	// models.MaxPlayers.
	ErrSessionFull = errors.New("session already has the maximum number of players")
)

// PlayerStore is the contract both persistence backends implement: the
// relational players table and a session-scoped collection inside the
// serialized session blob. Handlers compose the vote transfer engine on
// top of Update, which is the merge primitive.
type PlayerStore interface {
	// List returns all players in ascending id order. Never nil.
	List(ctx context.Context) ([]models.Player, error)

	// Get returns the player with the given id, or (nil, nil) when the
	// id is unknown.
	Get(ctx context.Context, id int) (*models.Player, error)

	// Create stores a new player and assigns its id. An empty name
	// defaults to the positional placeholder "Player N". The relational
	// backend never reuses ids; the session-scoped backend derives
	// max(existing)+1 and enforces the 8-player ceiling.
	Create(ctx context.Context, p models.Player) (*models.Player, error)

	// Update merges the set fields of the patch into the stored record
	// and returns the result, or (nil, nil) when the id is unknown.
	Update(ctx context.Context, id int, patch models.PlayerPatch) (*models.Player, error)

	// Delete removes the player. Deleting an absent id is a no-op, not
	// an error.
	Delete(ctx context.Context, id int) error
}
