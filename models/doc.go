// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Player: per-player vote counters (total pool, two agenda buckets,
    two rider flags)
  - Session: named collection of up to 8 players plus the two active
    agenda selections

# Partial Updates

Mutations use explicit patch records with one pointer field per mutable
attribute:

	patch := models.PlayerPatch{TotalVotes: &n}
	next := player.Merge(patch)

A nil field leaves the stored value untouched. Merge never changes
identity fields (Player.ID, Session.ID, Session.CreatedAt).

# Request Types

Types for parsing incoming JSON:

  - CreatePlayerRequest: name, faction (key required), vote counters
  - CreateSessionRequest: name
  - CastVotesRequest: agenda (1 or 2), delta
  - SetRiderRequest: agenda (1 or 2), enabled

# Error Shape

All non-2xx responses carry ErrorResponse:

	{"message": "totalVotes must be a non-negative integer", "field": "totalVotes"}

Field is present only for validation failures.
*/
package models
