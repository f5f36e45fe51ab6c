package models

import (
	"fmt"
	"time"
)

// ContactType is the canonical kind of a daily touchpoint.
type ContactType string

const (
	ContactEntry   ContactType = "entry"
	ContactThought ContactType = "thought"
	ContactStep    ContactType = "step"

	// contactNoteAlias is the legacy spelling of ContactEntry still accepted
	// at the boundary. It is never stored.
	contactNoteAlias = "note"
)

// AllContactTypes lists the canonical types in display order.
var AllContactTypes = []ContactType{ContactEntry, ContactThought, ContactStep}

// ParseContactType parses user/import input into a canonical contact type.
// The legacy "note" spelling maps to ContactEntry.
func ParseContactType(s string) (ContactType, error) {
	switch s {
	case string(ContactEntry), contactNoteAlias:
		return ContactEntry, nil
	case string(ContactThought):
		return ContactThought, nil
	case string(ContactStep):
		return ContactStep, nil
	default:
		return "", fmt.Errorf("invalid contact type: %q (use entry, thought, or step)", s)
	}
}

// Normalize collapses the legacy "note" alias to ContactEntry. Canonical
// values pass through unchanged.
func (t ContactType) Normalize() ContactType {
	if string(t) == contactNoteAlias {
		return ContactEntry
	}
	return t
}

// Contact is a single engagement record for one desire on one calendar day.
// At most one contact exists per (desire, day, type).
type Contact struct {
	ID        string      `json:"id"`
	DesireID  string      `json:"desire_id"`
	Day       string      `json:"date"` // YYYY-MM-DD, local calendar
	Type      ContactType `json:"type"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt *time.Time  `json:"updated_at,omitempty"`
}

// DaySummary is one day of the trailing activity window: the distinct set of
// canonical contact types recorded on that day. A day without contacts has an
// empty Types slice, never a missing element.
type DaySummary struct {
	Day   string        `json:"day"`
	Types []ContactType `json:"types"`
}

// ContactStats are all-time contact counts per canonical type.
type ContactStats struct {
	EntryCount   int `json:"entry_count"`
	ThoughtCount int `json:"thought_count"`
	StepCount    int `json:"step_count"`
}
