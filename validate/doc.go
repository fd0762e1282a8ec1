// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate checks mutation payloads before they reach a store.

Every check returns a *FieldError naming the first offending field path
and a human-readable message, which the handlers serialize as:

	{"message": "totalVotes must be a non-negative integer", "field": "totalVotes"}

# Policy

Validation rejects; the engine clamps. A POST /players body with
totalVotes: -5 is a 400, while a cast intent that would drive a counter
negative is silently clamped to zero by the engine. The two layers
deliberately have different policies and both are covered by tests.

The faction catalog is advisory only: faction must be present on create
but any string value passes, including empty and values outside the
catalog.
*/
package validate
