// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// MaxPlayers is the ceiling on players per session.
const MaxPlayers = 8

// Domain types

// Player holds one player's vote counters for the agenda phase.
// TotalVotes is the undistributed pool; the two agenda buckets hold votes
// already committed to a ballot item. A rider flag freezes its bucket
// against further cast/retract changes.
type Player struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Faction      string `json:"faction"`
	TotalVotes   int    `json:"totalVotes"`
	Agenda1Votes int    `json:"agenda1Votes"`
	Agenda2Votes int    `json:"agenda2Votes"`
	Agenda1Rider bool   `json:"agenda1Rider"`
	Agenda2Rider bool   `json:"agenda2Rider"`
}

// PlayerPatch is a partial update of a Player. Nil fields are left
// untouched by Merge.
type PlayerPatch struct {
	Name         *string `json:"name,omitempty"`
	Faction      *string `json:"faction,omitempty"`
	TotalVotes   *int    `json:"totalVotes,omitempty"`
	Agenda1Votes *int    `json:"agenda1Votes,omitempty"`
	Agenda2Votes *int    `json:"agenda2Votes,omitempty"`
	Agenda1Rider *bool   `json:"agenda1Rider,omitempty"`
	Agenda2Rider *bool   `json:"agenda2Rider,omitempty"`
}

// Merge applies the set fields of a patch to a copy of the player.
// The ID is never patched.
func (p Player) Merge(patch PlayerPatch) Player {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Faction != nil {
		p.Faction = *patch.Faction
	}
	if patch.TotalVotes != nil {
		p.TotalVotes = *patch.TotalVotes
	}
	if patch.Agenda1Votes != nil {
		p.Agenda1Votes = *patch.Agenda1Votes
	}
	if patch.Agenda2Votes != nil {
		p.Agenda2Votes = *patch.Agenda2Votes
	}
	if patch.Agenda1Rider != nil {
		p.Agenda1Rider = *patch.Agenda1Rider
	}
	if patch.Agenda2Rider != nil {
		p.Agenda2Rider = *patch.Agenda2Rider
	}
	return p
}

// Session is a named, independently persisted collection of players plus
// the two active agenda selections. An empty agenda name means no agenda
// is selected for that slot, the same way an empty faction means
// unselected.
type Session struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CreatedAt   int64    `json:"createdAt"` // epoch milliseconds
	Players     []Player `json:"players"`
	Agenda1Name string   `json:"agenda1Name"`
	Agenda2Name string   `json:"agenda2Name"`
}

// SessionPatch is a partial update of a Session's mutable metadata.
// Player membership is mutated through the session's player store, not
// through a patch.
type SessionPatch struct {
	Name        *string `json:"name,omitempty"`
	Agenda1Name *string `json:"agenda1Name,omitempty"`
	Agenda2Name *string `json:"agenda2Name,omitempty"`
}

// Merge applies the set fields of a patch to a copy of the session.
// ID, CreatedAt, and Players are never patched.
func (s Session) Merge(patch SessionPatch) Session {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Agenda1Name != nil {
		s.Agenda1Name = *patch.Agenda1Name
	}
	if patch.Agenda2Name != nil {
		s.Agenda2Name = *patch.Agenda2Name
	}
	return s
}

// Request types

// CreatePlayerRequest is the POST /players payload. Faction is a pointer
// so a missing key can be told apart from an explicit empty string: the
// key is required, the value may be any string (the faction catalog is
// advisory, not an enum).
type CreatePlayerRequest struct {
	Name         string  `json:"name"`
	Faction      *string `json:"faction"`
	TotalVotes   int     `json:"totalVotes"`
	Agenda1Votes int     `json:"agenda1Votes"`
	Agenda2Votes int     `json:"agenda2Votes"`
}

type CreateSessionRequest struct {
	Name string `json:"name"`
}

// CastVotesRequest moves Delta votes between the total pool and one
// agenda bucket. A negative delta retracts.
type CastVotesRequest struct {
	Agenda int `json:"agenda"`
	Delta  int `json:"delta"`
}

type SetRiderRequest struct {
	Agenda  int  `json:"agenda"`
	Enabled bool `json:"enabled"`
}

// Error response

// ErrorResponse is the body of every non-2xx response. Field names the
// first offending payload field on validation failures and is omitted
// otherwise.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
