// Package pug implements the roster and draft state machine of a pickup game:
// players queue with the roles they can play, the roster is staged once every
// role and both captains are covered, captains snake-draft their teams, and
// the finished game is handed back with undrafted players re-queued.
//
// Nothing in this package locks. Callers serialize access to a Pug.
package pug

import (
	"fmt"

	"github.com/KirkDiggler/pugbot/internal/draw"
)

// Pug owns the waiting roster and at most one running draft
type Pug struct {
	cfg      *Config
	sampler  draw.Sampler
	unstaged *Roster
	draft    *Draft
}

// New creates an idle pug
func New(cfg *Config, sampler draw.Sampler) (*Pug, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if sampler == nil {
		return nil, fmt.Errorf("%w: sampler cannot be nil", ErrInvalidConfig)
	}

	return &Pug{
		cfg:      cfg,
		sampler:  sampler,
		unstaged: NewRoster(cfg),
	}, nil
}

// Config returns the composition the pug counts against
func (p *Pug) Config() *Config {
	return p.cfg
}

// Add queues a player for the next draft
func (p *Pug) Add(id string, roles []Role, captain bool) error {
	return p.unstaged.Add(id, roles, captain)
}

// Remove takes a player off the waiting roster
func (p *Pug) Remove(id string) error {
	return p.unstaged.Remove(id)
}

// Rename follows a player's identity change through the roster and any running draft
func (p *Pug) Rename(oldID, newID string) {
	p.unstaged.Rename(oldID, newID)
	if p.draft != nil {
		p.draft.Rename(oldID, newID)
	}
}

// CanStage reports whether the waiting roster can be staged
func (p *Pug) CanStage() bool {
	return CanStage(p.cfg, p.unstaged.players)
}

// Need reports what the waiting roster is still missing
func (p *Pug) Need() NeedReport {
	return Need(p.cfg, p.unstaged.players)
}

// Stage freezes the waiting roster and starts the draft
func (p *Pug) Stage() error {
	if p.draft != nil {
		return fmt.Errorf("%w: a draft is already running", ErrInvalidState)
	}

	d, err := Stage(p.cfg, p.unstaged, p.sampler)
	if err != nil {
		return err
	}

	p.draft = d
	return nil
}

// Pick applies a pick for the team whose turn it is
func (p *Pug) Pick(id string, role Role) error {
	if p.draft == nil {
		return fmt.Errorf("%w: no draft is running", ErrInvalidState)
	}
	return p.draft.Pick(id, role)
}

// CanStart reports whether a running draft has filled both teams
func (p *Pug) CanStart() bool {
	return p.draft != nil && p.draft.CanStart()
}

// MakeGame completes the draft and returns the teams
func (p *Pug) MakeGame() (*Game, error) {
	if p.draft == nil {
		return nil, fmt.Errorf("%w: no draft is running", ErrInvalidState)
	}

	game, err := p.draft.Finalize(p.unstaged)
	if err != nil {
		return nil, err
	}

	p.draft = nil
	return game, nil
}

// Abort cancels the running draft and re-queues everyone in it
func (p *Pug) Abort() error {
	if p.draft == nil {
		return fmt.Errorf("%w: no draft is running", ErrInvalidState)
	}

	p.draft.Abort(p.unstaged)
	p.draft = nil
	return nil
}

// Drafting reports whether a draft is running
func (p *Pug) Drafting() bool {
	return p.draft != nil
}

// InDraft reports whether id is a captain, pickable or picked in the running draft
func (p *Pug) InDraft(id string) bool {
	return p.draft != nil && p.draft.Has(id)
}

// Captains returns the captains of the running draft
func (p *Pug) Captains() ([NumTeams]string, bool) {
	if p.draft == nil {
		return [NumTeams]string{}, false
	}
	return p.draft.Captains(), true
}

// Teams returns the teams of the running draft
func (p *Pug) Teams() ([NumTeams]Team, bool) {
	if p.draft == nil {
		return [NumTeams]Team{}, false
	}
	return p.draft.Teams(), true
}

// StagedPlayers returns the players still available to pick, nil when not drafting
func (p *Pug) StagedPlayers() map[string]Player {
	if p.draft == nil {
		return nil
	}
	return p.draft.Staged()
}

// StagedPlayer looks up a pickable player
func (p *Pug) StagedPlayer(id string) (Player, bool) {
	if p.draft == nil {
		return Player{}, false
	}
	return p.draft.StagedPlayer(id)
}

// UnstagedPlayers returns the waiting roster
func (p *Pug) UnstagedPlayers() map[string]Player {
	return p.unstaged.Players()
}

// UnstagedIDs returns the waiting players in sorted order
func (p *Pug) UnstagedIDs() []string {
	return p.unstaged.IDs()
}

// PickingTeam returns the team whose turn it is
func (p *Pug) PickingTeam() (int, bool) {
	if p.draft == nil {
		return 0, false
	}
	return p.draft.PickingTeam(), true
}

// PickingCaptain returns the captain whose turn it is
func (p *Pug) PickingCaptain() (string, bool) {
	if p.draft == nil {
		return "", false
	}
	return p.draft.PickingCaptain(), true
}
