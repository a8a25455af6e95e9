package models

import "strings"

// Criteria holds the four independent filter predicates of the search view.
// A blank field always matches. All non-blank fields must match (logical AND).
type Criteria struct {
	ClientName   string `json:"client_name" validate:"max=200"`
	Registration string `json:"registration" validate:"max=200"`
	Chassis      string `json:"chassis" validate:"max=200"`
	Status       Status `json:"status" validate:"omitempty,oneof=draft completed archived"`
}

// Normalize returns a copy with surrounding whitespace removed from every field.
func (c Criteria) Normalize() Criteria {
	return Criteria{
		ClientName:   strings.TrimSpace(c.ClientName),
		Registration: strings.TrimSpace(c.Registration),
		Chassis:      strings.TrimSpace(c.Chassis),
		Status:       Status(strings.TrimSpace(string(c.Status))),
	}
}

// IsBlank reports whether every predicate is blank.
func (c Criteria) IsBlank() bool {
	n := c.Normalize()
	return n.ClientName == "" && n.Registration == "" && n.Chassis == "" && n.Status == StatusAny
}
