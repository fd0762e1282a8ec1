// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/cycoconutz/Twilight-Votes/models"
)

// SQLStore implements PlayerStore over the players table. The same code
// serves sqlite and postgres: both accept $N placeholders and both scan
// their boolean representation into Go bools.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates a relational player store. The schema must already
// exist (db.CreateSchema).
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

const playerColumns = `id, name, faction, total_votes, agenda1_votes, agenda2_votes, agenda1_rider, agenda2_rider`

func scanPlayer(row interface{ Scan(...any) error }) (*models.Player, error) {
	var p models.Player
	err := row.Scan(
		&p.ID, &p.Name, &p.Faction,
		&p.TotalVotes, &p.Agenda1Votes, &p.Agenda2Votes,
		&p.Agenda1Rider, &p.Agenda2Rider,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all players in ascending id order.
func (s *SQLStore) List(ctx context.Context) ([]models.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+playerColumns+` FROM players ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close player rows", "error", closeErr)
		}
	}()

	players := []models.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		players = append(players, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return players, nil
}

// Get returns the player with the given id, or (nil, nil) when absent.
func (s *SQLStore) Get(ctx context.Context, id int) (*models.Player, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = $1`, id)

	p, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan player row: %w", err)
	}
	return p, nil
}

// Create inserts a new player. The database assigns the id; deleted ids
// are never handed back out.
func (s *SQLStore) Create(ctx context.Context, p models.Player) (*models.Player, error) {
	if p.Name == "" {
		var count int
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
			return nil, fmt.Errorf("count players: %w", err)
		}
		p.Name = fmt.Sprintf("Player %d", count+1)
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO players (name, faction, total_votes, agenda1_votes, agenda2_votes, agenda1_rider, agenda2_rider)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, p.Name, p.Faction, p.TotalVotes, p.Agenda1Votes, p.Agenda2Votes, p.Agenda1Rider, p.Agenda2Rider).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("insert player: %w", err)
	}
	return &p, nil
}

// Update merges the patch into the stored record. Read-modify-write is
// fine here: the design assumes no two writers race on the same id.
func (s *SQLStore) Update(ctx context.Context, id int, patch models.PlayerPatch) (*models.Player, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	merged := current.Merge(patch)
	_, err = s.db.ExecContext(ctx, `
		UPDATE players
		SET name = $1, faction = $2, total_votes = $3,
		    agenda1_votes = $4, agenda2_votes = $5,
		    agenda1_rider = $6, agenda2_rider = $7
		WHERE id = $8
	`, merged.Name, merged.Faction, merged.TotalVotes,
		merged.Agenda1Votes, merged.Agenda2Votes,
		merged.Agenda1Rider, merged.Agenda2Rider, id)
	if err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}
	return &merged, nil
}

// Delete removes the player. Idempotent; an absent id is not an error.
func (s *SQLStore) Delete(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}
