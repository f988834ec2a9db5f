package pug

import (
	"time"

	"github.com/KirkDiggler/pugbot/internal/common/clock"
	"github.com/KirkDiggler/pugbot/internal/common/uuid"
	"github.com/KirkDiggler/pugbot/internal/draw"
	"github.com/KirkDiggler/pugbot/internal/models"
	pugCore "github.com/KirkDiggler/pugbot/internal/pug"
	matchRepo "github.com/KirkDiggler/pugbot/internal/repositories/match"
	"go.uber.org/zap"
)

// Config holds configuration for the pug service
type Config struct {
	// PugConfig is the game composition every channel drafts against
	PugConfig *pugCore.Config

	// StageDelay is how long a ready roster waits before it is staged.
	// Zero stages as soon as the roster is ready.
	StageDelay time.Duration

	// Repository dependencies
	MatchRepo matchRepo.Repository

	// Service dependencies
	Sampler       draw.Sampler
	Clock         clock.Clock
	UUIDGenerator uuid.Generator

	// Listener is optional and may be set later with SetListener
	Listener Listener

	// Logger is optional; nil disables logging
	Logger *zap.Logger
}

// PlayerView is a queued or pickable player
type PlayerView struct {
	ID      string
	Roles   []string
	Captain bool
}

// RoleNeed is the number of players a role is still short
type RoleNeed struct {
	Role  string
	Count int
}

// NeedView reports what is missing before a pug can be staged
type NeedView struct {
	// Captains is how many more captain-eligible players are needed
	Captains int

	// Roles lists the short roles in configured order
	Roles []RoleNeed
}

// Satisfied reports whether nothing is missing
func (n *NeedView) Satisfied() bool {
	return n.Captains == 0 && len(n.Roles) == 0
}

// Slot is a role and who fills it
type Slot struct {
	Role     string
	PlayerID string
}

// TeamView is one side of a running draft
type TeamView struct {
	Color   string
	Captain string

	// Picks lists the filled roles in configured role order
	Picks []Slot
}

// DraftView is a snapshot of a running draft
type DraftView struct {
	Captains       [pugCore.NumTeams]string
	Teams          [pugCore.NumTeams]TeamView
	PickingTeam    int
	PickingCaptain string

	// Staged lists the players still available, sorted by ID
	Staged []PlayerView
}

// AddInput contains parameters for queueing a player
type AddInput struct {
	ChannelID string
	PlayerID  string

	// Roles are the role names as typed; unknown ones are ignored
	Roles []string

	// Captain marks the player as willing to captain
	Captain bool
}

// AddOutput contains the result of queueing a player
type AddOutput struct {
	// Roles are the recognized roles the player was queued with
	Roles []string

	// IgnoredRoles are the role names that were not recognized
	IgnoredRoles []string

	// Unstaged lists the waiting players in sorted order
	Unstaged []string

	Need *NeedView

	// Staged is set when this add started a draft
	Staged *DraftView

	// StageScheduled is set when a delayed stage is pending
	StageScheduled bool
}

// RemoveInput contains parameters for removing a player
type RemoveInput struct {
	ChannelID string
	PlayerID  string
}

// RemoveOutput contains the result of removing a player
type RemoveOutput struct {
	Unstaged []string
	Need     *NeedView

	// StageCancelled is set when the removal called off a pending stage
	StageCancelled bool

	// Staged is set when this removal started a draft
	Staged *DraftView

	StageScheduled bool
}

// AbortInput contains parameters for calling off a draft
type AbortInput struct {
	ChannelID string

	// PlayerID must be one of the draft's captains
	PlayerID string
}

// AbortOutput contains the waiting roster after a draft was called off
type AbortOutput struct {
	Unstaged []string
	Need     *NeedView
}

// RenameInput contains parameters for following an identity change
type RenameInput struct {
	// ChannelID limits the rename to one channel; empty means every channel
	ChannelID string

	OldID string
	NewID string
}

// RenameOutput contains the result of a rename
type RenameOutput struct {
	// Channels lists the channels where OldID was found, sorted
	Channels []string
}

// PickInput contains parameters for a captain's pick
type PickInput struct {
	ChannelID string
	CaptainID string
	PlayerID  string
	Role      string
}

// PickOutput contains the result of a pick
type PickOutput struct {
	// Team is the index of the team that picked
	Team  int
	Color string
	Role  string

	// Draft is the draft after the pick, nil when the pick made the game
	Draft *DraftView

	// Match is set when the pick filled both teams
	Match *models.Match

	// Staged is set when the players returned from a finished draft started the next one
	Staged *DraftView

	StageScheduled bool
}

// NeedInput contains parameters for a need report
type NeedInput struct {
	ChannelID string
}

// NeedOutput contains a need report
type NeedOutput struct {
	Need     *NeedView
	Drafting bool
}

// StatusInput contains parameters for a status report
type StatusInput struct {
	ChannelID string
}

// StatusOutput contains a channel's pug state
type StatusOutput struct {
	ChannelID string

	// Unstaged lists the waiting players sorted by ID
	Unstaged []PlayerView
	Need     *NeedView

	// Draft is nil when no draft is running
	Draft *DraftView

	StagePending bool
}

// LastMatchInput contains parameters for fetching the last match
type LastMatchInput struct {
	ChannelID string
}

// LastMatchOutput contains the last match made in a channel
type LastMatchOutput struct {
	Match *models.Match
}
