package pug

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/pugbot/internal/services/pug Service,Listener

import "context"

// Service defines the interface for pug operations. Every call is
// serialized across all channels.
type Service interface {
	// Add queues a player, replacing any earlier entry, and stages the pug
	// once the roster covers every role and both captains
	Add(ctx context.Context, input *AddInput) (*AddOutput, error)

	// Remove takes a player off the waiting roster
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)

	// Rename follows a player's identity change in one or every channel
	Rename(ctx context.Context, input *RenameInput) (*RenameOutput, error)

	// Pick lets the captain whose turn it is draft a player for a role.
	// The pick that fills both teams makes the game and records it.
	Pick(ctx context.Context, input *PickInput) (*PickOutput, error)

	// Abort lets a captain call off the running draft and re-queue everyone in it
	Abort(ctx context.Context, input *AbortInput) (*AbortOutput, error)

	// Need reports what the waiting roster still lacks
	Need(ctx context.Context, input *NeedInput) (*NeedOutput, error)

	// Status describes the waiting roster and any running draft
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)

	// LastMatch returns the most recent game made in a channel
	LastMatch(ctx context.Context, input *LastMatchInput) (*LastMatchOutput, error)

	// SetListener registers who is told about stages that happen on a timer
	SetListener(listener Listener)
}

// Listener is notified about pug events that are not a reply to a call
type Listener interface {
	// OnStaged is called after a delayed stage has started a draft
	OnStaged(ctx context.Context, channelID string, draft *DraftView)
}
