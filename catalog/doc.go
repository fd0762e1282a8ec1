// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the read-only display data the voting UI consumes.

Factions is the sorted 29-entry faction list offered by the selection
autocomplete. Agendas describes the ballot items (for/against or elected
outcome text) a session can point its two agenda slots at.

Both are advisory. The stores never validate against them: a player may
carry any faction string and a session may name any agenda. The catalog
exists so a thin client can render without bundling the game data.
*/
package catalog
