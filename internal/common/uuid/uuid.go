package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/pugbot/internal/common/uuid Generator

// Generator hands out identifiers for finished matches
type Generator interface {
	NewMatchID() string
}

// DefaultGenerator issues random (version 4) UUIDs
type DefaultGenerator struct{}

// New returns the default generator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewMatchID returns a fresh match ID
func (g *DefaultGenerator) NewMatchID() string {
	return uuid.NewString()
}
