// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine implements the vote transfer rules.

All functions are pure: they take a Player value and an intent and return
the next Player state. Committing the result to a store is the caller's
job.

# Casting and Retracting

CastOrRetract moves votes between the undistributed pool and one agenda
bucket as a paired mutation:

	next := engine.CastOrRetract(player, engine.Agenda1, 2)
	// agenda1Votes += 2, totalVotes -= 2

Both counters clamp at zero independently rather than rejecting the
operation. This means conservation of totalVotes + bucket can break at
the boundary (retracting 5 from a bucket of 2 refunds 5 into the total),
which mirrors the hand-tally the tool replaces.

# Riders

A rider freezes a bucket: while the slot's rider flag is set,
CastOrRetract on that slot is a no-op. The flag itself is toggled with
SetRider and never changes any count.

# Other Rules

SetTotal overwrites the pool directly (manual correction, no
rebalancing), Reset zeroes every counter and flag while keeping identity
fields, and SetFaction accepts any string including empty.
*/
package engine
