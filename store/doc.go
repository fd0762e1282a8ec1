// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the player and session persistence layers.

# PlayerStore

PlayerStore is one contract with two interchangeable backends:

  - SQLStore: the players table behind database/sql (sqlite or
    postgres). Ids are database-assigned, monotonic, never reused.
  - SessionStore.Players(id): a view over one session's player
    collection inside the serialized blob. Ids are max(existing)+1 and
    the 8-player ceiling is enforced on create.

Both report an unknown player id as (nil, nil) rather than an error, and
both treat delete-of-absent as a successful no-op.

# SessionStore

SessionStore is the local-persistence mode: the entire session
collection serializes to one JSON file, read fully at startup and
rewritten fully (temp file + rename) after every mutation. An unreadable
or corrupt file at startup degrades to "no sessions" with a logged
warning. A failed write surfaces to the caller; there is no retry.

Every session is created with two seeded default players:

	sess, err := sessions.Create(ctx, "Thursday game")
	// sess.Players = [{id:1 "Player 1"} {id:2 "Player 2"}]

# Errors

	store.ErrUnknownSession  session-scoped operation on a deleted session
	store.ErrSessionFull     create would exceed models.MaxPlayers
*/
package store
