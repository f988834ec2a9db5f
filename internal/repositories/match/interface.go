package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pugbot/internal/repositories/match Repository

import (
	"context"

	"github.com/KirkDiggler/pugbot/internal/models"
)

// Repository defines the interface for match history persistence
type Repository interface {
	// SaveMatch persists a finished match and indexes it under its channel
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetLastMatch retrieves the most recent match played in a channel
	GetLastMatch(ctx context.Context, input *GetLastMatchInput) (*models.Match, error)

	// ListMatches retrieves a channel's matches, newest first
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)
}
