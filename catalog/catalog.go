// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// Factions is the advisory faction list fed to the selection UI. It is
// not an enum: the stores accept any faction string, on or off this
// list. Sorted.
var Factions = []string{
	"Arborec",
	"Argent Flight",
	"Barony of Letnev",
	"Clan of Saar",
	"Crimson Rebellion",
	"Deepwrought Scholarate",
	"Embers of Muaat",
	"Emirates of Hacan",
	"Empyrean",
	"Federation of Sol",
	"Firmament/The Obsidian",
	"Ghosts of Creuss",
	"L1Z1X Mindnet",
	"Last Bastion",
	"Mahact Gene-Sorcerers",
	"Mentak Coalition",
	"Naalu Collective",
	"Naaz-Rokha Alliance",
	"Nekro Virus",
	"Nomad",
	"Ral Nel Consortium",
	"Sardakk N'orr",
	"Titans of Ul",
	"Universities of Jol-Nar",
	"Vuil'Raith Cabal",
	"Winnu",
	"Xxcha Kingdom",
	"Yin Brotherhood",
	"Yssaril Tribes",
}

// Agenda is one ballot item the table can vote on. Law agendas carry
// for/against outcome text; elect agendas describe what the elected
// target suffers or gains instead.
type Agenda struct {
	Name    string `json:"name"`
	Type    string `json:"type"` // "Law" or "Directive"
	Elect   string `json:"elect,omitempty"`
	For     string `json:"for,omitempty"`
	Against string `json:"against,omitempty"`
	Elected string `json:"elected,omitempty"`
}

//go:embed agendas.json
var agendasJSON []byte

// Agendas is the read-only agenda catalog. Display data only; nothing
// in the stores references it.
var Agendas = mustLoadAgendas()

func mustLoadAgendas() []Agenda {
	var agendas []Agenda
	if err := json.Unmarshal(agendasJSON, &agendas); err != nil {
		panic(fmt.Sprintf("catalog: bad embedded agendas.json: %v", err))
	}
	return agendas
}

// FindAgenda returns the agenda with the given name, or nil. Session
// agenda selections are free text, so a miss is normal, not an error.
func FindAgenda(name string) *Agenda {
	for i := range Agendas {
		if Agendas[i].Name == name {
			return &Agendas[i]
		}
	}
	return nil
}
