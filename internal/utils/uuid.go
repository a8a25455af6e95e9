package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for sessions and traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 if the clock
// sequence cannot be read.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValid reports whether s is a well-formed UUID.
func IsValid(s string) bool {
	return uuid.Validate(s) == nil
}
