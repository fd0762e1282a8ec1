// Copyright (c) 2026 cycoconutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cycoconutz/Twilight-Votes/models"
)

// FieldError reports the first offending field of a mutation payload.
// When a payload fails validation no part of it reaches a store.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func nonNegative(field string, value int) *FieldError {
	if value < 0 {
		return &FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a non-negative integer", field),
		}
	}
	return nil
}

// CreatePlayer checks a POST /players payload. The faction key must be
// present; its value may be any string, empty included. Counters must be
// non-negative.
func CreatePlayer(req models.CreatePlayerRequest) *FieldError {
	if req.Faction == nil {
		return &FieldError{Field: "faction", Message: "faction is required"}
	}
	if err := nonNegative("totalVotes", req.TotalVotes); err != nil {
		return err
	}
	if err := nonNegative("agenda1Votes", req.Agenda1Votes); err != nil {
		return err
	}
	return nonNegative("agenda2Votes", req.Agenda2Votes)
}

// PlayerPatch checks a PUT /players/{id} payload. Only fields that are
// present are validated; absent fields stay untouched in the store.
func PlayerPatch(patch models.PlayerPatch) *FieldError {
	if patch.TotalVotes != nil {
		if err := nonNegative("totalVotes", *patch.TotalVotes); err != nil {
			return err
		}
	}
	if patch.Agenda1Votes != nil {
		if err := nonNegative("agenda1Votes", *patch.Agenda1Votes); err != nil {
			return err
		}
	}
	if patch.Agenda2Votes != nil {
		if err := nonNegative("agenda2Votes", *patch.Agenda2Votes); err != nil {
			return err
		}
	}
	return nil
}

// AgendaSlot checks the agenda selector of a cast or rider intent.
func AgendaSlot(agenda int) *FieldError {
	if agenda != 1 && agenda != 2 {
		return &FieldError{Field: "agenda", Message: "agenda must be 1 or 2"}
	}
	return nil
}

// CreateSession checks a POST /sessions payload.
func CreateSession(req models.CreateSessionRequest) *FieldError {
	if req.Name == "" {
		return &FieldError{Field: "name", Message: "name is required"}
	}
	return nil
}

// FromJSON translates a JSON decoding error into a FieldError carrying
// the offending field path when the decoder can name one (wrong type for
// a known field). Other decode failures return nil and the caller falls
// back to a generic bad-request message.
func FromJSON(err error) *FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if i := strings.LastIndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		return &FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be of type %s", field, typeErr.Type),
		}
	}
	return nil
}
