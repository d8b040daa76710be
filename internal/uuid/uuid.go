// Package uuid wraps draft identity generation so tests can pin IDs.
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator produces opaque, never reused identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator issues random (v4) UUIDs
type GoogleUUIDGenerator struct{}

// New returns a fresh v4 UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator hands out IDs from a fixed list, then falls back to v4
// UUIDs. Used by tests and the CLI's dry-run fixtures.
type SequenceGenerator struct {
	ids  []string
	next int
}

// NewSequenceGenerator creates a generator that returns ids in order
func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

// New returns the next queued id
func (g *SequenceGenerator) New() string {
	if g.next < len(g.ids) {
		id := g.ids[g.next]
		g.next++
		return id
	}
	return uuid.NewString()
}
