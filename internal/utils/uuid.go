package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers. Request IDs and the fake
// API's document IDs both come from it.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random v4 when the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewRequestID is a shortcut for a one-off request identifier.
func NewRequestID() string {
	return NewUUIDGenerator().Generate()
}
