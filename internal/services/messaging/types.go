package messaging

import (
	"github.com/KirkDiggler/pugbot/internal/models"
	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Roles is the ordered role list shown in help and error text
	Roles []string

	// CommandPrefix is shown in usage text, e.g. ";"
	CommandPrefix string
}

// GetPlayersAddedMessageInput contains parameters for the waiting list message
type GetPlayersAddedMessageInput struct {
	// Players are the waiting player IDs in display order
	Players []string
}

// GetPlayersAddedMessageOutput contains the waiting list message
type GetPlayersAddedMessageOutput struct {
	Message string
}

// GetNeedMessageInput contains parameters for the need message
type GetNeedMessageInput struct {
	Need *pugService.NeedView

	// Drafting is set when a draft is already running
	Drafting bool
}

// GetNeedMessageOutput contains the need message
type GetNeedMessageOutput struct {
	Message string
}

// GetStagedMessageInput contains parameters for the staged announcement
type GetStagedMessageInput struct {
	Draft *pugService.DraftView
}

// GetStagedMessageOutput contains the staged announcement
type GetStagedMessageOutput struct {
	Message string
}

// GetPickPromptMessageInput contains parameters for the pick prompt
type GetPickPromptMessageInput struct {
	Draft *pugService.DraftView
}

// GetPickPromptMessageOutput contains the pick prompt
type GetPickPromptMessageOutput struct {
	Message string
}

// GetDraftAbortedMessageInput contains parameters for the abort announcement
type GetDraftAbortedMessageInput struct {
	CaptainID string

	// Players are everyone back in the queue, sorted
	Players []string
}

// GetDraftAbortedMessageOutput contains the abort announcement
type GetDraftAbortedMessageOutput struct {
	Message string
}

// GetTeamMessagesInput contains parameters for the team lines
type GetTeamMessagesInput struct {
	Match *models.Match
}

// GetTeamMessagesOutput contains one line per team
type GetTeamMessagesOutput struct {
	Messages []string
}

// GetPlayerPickedMessageInput contains parameters for a player's direct message
type GetPlayerPickedMessageInput struct {
	Role  string
	Color string
}

// GetPlayerPickedMessageOutput contains a player's direct message
type GetPlayerPickedMessageOutput struct {
	Message string
}

// GetStatusMessageInput contains parameters for the status message
type GetStatusMessageInput struct {
	Status *pugService.StatusOutput
}

// GetStatusMessageOutput contains the status message
type GetStatusMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	// PlayerID is who the message is addressed to
	PlayerID string

	// Err is the error returned by the pug service
	Err error
}

// GetErrorMessageOutput contains an error message
type GetErrorMessageOutput struct {
	Message string
}

// GetUsageMessageInput contains parameters for the usage message
type GetUsageMessageInput struct {
	// PlayerID is who asked, empty for a general message
	PlayerID string
}

// GetUsageMessageOutput contains the usage message
type GetUsageMessageOutput struct {
	Message string
}
