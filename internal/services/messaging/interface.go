package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPlayersAddedMessage lists who is waiting for the next pug
	GetPlayersAddedMessage(ctx context.Context, input *GetPlayersAddedMessageInput) (*GetPlayersAddedMessageOutput, error)

	// GetNeedMessage describes what the waiting roster still lacks
	GetNeedMessage(ctx context.Context, input *GetNeedMessageInput) (*GetNeedMessageOutput, error)

	// GetStagedMessage announces a new draft and its captains
	GetStagedMessage(ctx context.Context, input *GetStagedMessageInput) (*GetStagedMessageOutput, error)

	// GetPickPromptMessage tells the picking captain who is still available
	GetPickPromptMessage(ctx context.Context, input *GetPickPromptMessageInput) (*GetPickPromptMessageOutput, error)

	// GetDraftAbortedMessage announces that a captain called the draft off
	GetDraftAbortedMessage(ctx context.Context, input *GetDraftAbortedMessageInput) (*GetDraftAbortedMessageOutput, error)

	// GetTeamMessages returns one line per team of a finished match
	GetTeamMessages(ctx context.Context, input *GetTeamMessagesInput) (*GetTeamMessagesOutput, error)

	// GetPlayerPickedMessage is the direct message sent to every player of a made game
	GetPlayerPickedMessage(ctx context.Context, input *GetPlayerPickedMessageInput) (*GetPlayerPickedMessageOutput, error)

	// GetStatusMessage summarizes a channel's pug
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetUsageMessage lists the available commands
	GetUsageMessage(ctx context.Context, input *GetUsageMessageInput) (*GetUsageMessageOutput, error)
}
