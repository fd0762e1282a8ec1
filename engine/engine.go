// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "github.com/cycoconutz/Twilight-Votes/models"

// Slot identifies one of the two simultaneous agendas.
type Slot int

const (
	Agenda1 Slot = 1
	Agenda2 Slot = 2
)

// Valid reports whether the slot names a tracked agenda.
func (s Slot) Valid() bool {
	return s == Agenda1 || s == Agenda2
}

// CastOrRetract moves delta votes from the player's total pool into the
// slot's bucket (or back out, for a negative delta). If the slot's rider
// is set the player is returned unchanged.
//
// Both sides clamp at zero independently. Retracting more votes than the
// bucket holds does not refund the total beyond what actually left the
// bucket, so vote conservation is intentionally breakable at the
// boundary. Clamp, never reject.
func CastOrRetract(p models.Player, slot Slot, delta int) models.Player {
	if rider(p, slot) {
		return p
	}
	next := max(0, bucket(p, slot)+delta)
	p = setBucket(p, slot, next)
	p.TotalVotes = max(0, p.TotalVotes-delta)
	return p
}

// SetTotal overwrites the undistributed pool without touching the agenda
// buckets. This is the out-of-band manual correction; it does not
// rebalance committed votes.
func SetTotal(p models.Player, total int) models.Player {
	p.TotalVotes = total
	return p
}

// SetRider toggles the lock flag for a slot. Counts are untouched.
func SetRider(p models.Player, slot Slot, enabled bool) models.Player {
	switch slot {
	case Agenda1:
		p.Agenda1Rider = enabled
	case Agenda2:
		p.Agenda2Rider = enabled
	}
	return p
}

// Reset zeroes all counters and rider flags, leaving the player's
// identity (id, name, faction) alone. Resetting twice is the same as
// resetting once.
func Reset(p models.Player) models.Player {
	p.TotalVotes = 0
	p.Agenda1Votes = 0
	p.Agenda2Votes = 0
	p.Agenda1Rider = false
	p.Agenda2Rider = false
	return p
}

// SetFaction overwrites the faction label. Any string is accepted,
// including empty (unselected) and values outside the known catalog; the
// catalog only feeds the selection UI.
func SetFaction(p models.Player, faction string) models.Player {
	p.Faction = faction
	return p
}

func bucket(p models.Player, slot Slot) int {
	if slot == Agenda2 {
		return p.Agenda2Votes
	}
	return p.Agenda1Votes
}

func setBucket(p models.Player, slot Slot, n int) models.Player {
	if slot == Agenda2 {
		p.Agenda2Votes = n
	} else {
		p.Agenda1Votes = n
	}
	return p
}

func rider(p models.Player, slot Slot) bool {
	if slot == Agenda2 {
		return p.Agenda2Rider
	}
	return p.Agenda1Rider
}
