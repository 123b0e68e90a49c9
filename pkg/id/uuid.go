package id

import (
	"github.com/google/uuid"
)

// UUIDGenerator generates version 4 or version 7 UUIDs.
type UUIDGenerator struct {
	version int
}

// UUIDOption is a functional option for UUIDGenerator.
type UUIDOption func(*UUIDGenerator)

// WithVersion selects UUID version 4 or 7. Other values select 7.
func WithVersion(v int) UUIDOption {
	return func(g *UUIDGenerator) {
		g.version = v
	}
}

// NewUUIDGenerator creates a UUID generator; version 7 by default.
func NewUUIDGenerator(opts ...UUIDOption) *UUIDGenerator {
	g := &UUIDGenerator{version: 7}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate creates a new UUID string.
// Panics if the random source fails.
func (g *UUIDGenerator) Generate() string {
	newUUID := uuid.NewV7
	if g.version == 4 {
		newUUID = uuid.NewRandom
	}
	return uuid.Must(newUUID()).String()
}

// GenerateN creates n UUID strings.
func (g *UUIDGenerator) GenerateN(n int) []string {
	return generateN(n, g.Generate)
}

// IsValidUUID checks if a string is a valid UUID format.
func IsValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}
