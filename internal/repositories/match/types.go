package match

import "github.com/KirkDiggler/pugbot/internal/models"

type SaveMatchInput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type GetLastMatchInput struct {
	ChannelID string
}

type ListMatchesInput struct {
	ChannelID string
	// Limit caps the number of matches returned; zero means all
	Limit int
}

type ListMatchesOutput struct {
	Matches []*models.Match
}
