package pug

import (
	"fmt"

	"github.com/KirkDiggler/pugbot/internal/draw"
)

// Team maps each filled role to the player holding it
type Team map[Role]string

func (t Team) clone() Team {
	out := make(Team, len(t))
	for r, id := range t {
		out[r] = id
	}
	return out
}

// Game is the result of a completed draft
type Game struct {
	// Captains holds the captain of each team, indexed by team
	Captains [NumTeams]string

	// Teams holds every role of every team
	Teams [NumTeams]Team
}

// Draft is a staged pug: the frozen roster minus the captains, the two teams
// being picked and the snake order cursor
type Draft struct {
	cfg      *Config
	captains [NumTeams]string
	teams    [NumTeams]Team
	staged   map[string]Player
	order    *Order
	picking  int

	// entries keeps every staged player as they queued, captains included
	entries map[string]Player
}

// Stage drains roster into a new draft. Captains are drawn from the
// captain-eligible players with sampler; everyone else becomes pickable.
func Stage(cfg *Config, roster *Roster, sampler draw.Sampler) (*Draft, error) {
	if !CanStage(cfg, roster.players) {
		return nil, fmt.Errorf("%w: roster cannot be staged", ErrInvalidState)
	}

	var candidates []string
	for _, id := range roster.IDs() {
		if roster.players[id].Captain {
			candidates = append(candidates, id)
		}
	}

	drawn, err := sampler.Sample(candidates, NumTeams)
	if err != nil {
		return nil, fmt.Errorf("failed to draw captains: %w", err)
	}

	if len(drawn) != NumTeams || drawn[0] == drawn[1] {
		return nil, fmt.Errorf("%w: captain draw returned %v", ErrInvalidState, drawn)
	}
	for _, id := range drawn {
		if !roster.Has(id) {
			return nil, fmt.Errorf("%w: drawn captain %q is not on the roster", ErrInvalidState, id)
		}
	}

	d := &Draft{
		cfg:    cfg,
		staged: roster.drain(),
		order:  NewOrder(),
	}
	d.entries = clonePlayers(d.staged)

	for i, id := range drawn {
		d.captains[i] = id
		delete(d.staged, id)
		d.teams[i] = make(Team)
	}

	d.picking = d.order.Next()
	return d, nil
}

// Pick puts a staged player on the picking team in the given role and
// passes the turn. Who is allowed to pick is checked by the caller.
func (d *Draft) Pick(id string, role Role) error {
	if !d.cfg.IsRole(role) {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	team := d.teams[d.picking]
	if _, taken := team[role]; taken {
		return ErrRoleAlreadyPicked
	}

	if _, ok := d.staged[id]; !ok {
		return ErrUnknownPlayer
	}

	team[role] = id
	delete(d.staged, id)
	d.picking = d.order.Next()
	return nil
}

// CanStart reports whether both teams have all their drafted slots filled
func (d *Draft) CanStart() bool {
	for _, team := range d.teams {
		if len(team) != d.cfg.PicksPerTeam() {
			return false
		}
	}
	return true
}

// Finalize gives every open role to the team's captain and returns the game.
// Players that were never picked go back to roster as non-captains.
func (d *Draft) Finalize(roster *Roster) (*Game, error) {
	if !d.CanStart() {
		return nil, fmt.Errorf("%w: teams are not full", ErrInvalidState)
	}

	game := &Game{Captains: d.captains}
	for i, team := range d.teams {
		full := team.clone()
		for _, r := range d.cfg.Roles {
			if _, ok := full[r]; !ok {
				full[r] = d.captains[i]
			}
		}
		game.Teams[i] = full
	}

	for _, id := range sortedIDs(d.staged) {
		roster.restore(d.staged[id])
	}

	d.reset()
	return game, nil
}

// Abort calls the draft off. Captains, picked and pickable players all go
// back to roster with the roles and captain flag they queued with.
func (d *Draft) Abort(roster *Roster) {
	for _, id := range sortedIDs(d.entries) {
		roster.reinstate(d.entries[id].clone())
	}
	d.reset()
}

func (d *Draft) reset() {
	d.staged = nil
	d.entries = nil
	d.teams = [NumTeams]Team{}
	d.captains = [NumTeams]string{}
	d.order = nil
	d.picking = 0
}

// Rename changes a player's id everywhere it appears in the draft
func (d *Draft) Rename(oldID, newID string) {
	if oldID == newID {
		return
	}

	renameEntry(d.staged, oldID, newID)
	renameEntry(d.entries, oldID, newID)

	for i, id := range d.captains {
		if id == oldID {
			d.captains[i] = newID
		}
	}

	for _, team := range d.teams {
		for r, id := range team {
			if id == oldID {
				team[r] = newID
			}
		}
	}
}

// Has reports whether id is a captain, a pickable player or already picked
func (d *Draft) Has(id string) bool {
	if _, ok := d.staged[id]; ok {
		return true
	}
	for i, captain := range d.captains {
		if captain == id {
			return true
		}
		for _, picked := range d.teams[i] {
			if picked == id {
				return true
			}
		}
	}
	return false
}

// Captains returns the captain of each team
func (d *Draft) Captains() [NumTeams]string {
	return d.captains
}

// Teams returns a copy of the teams as drafted so far
func (d *Draft) Teams() [NumTeams]Team {
	var out [NumTeams]Team
	for i, team := range d.teams {
		out[i] = team.clone()
	}
	return out
}

// Staged returns a snapshot of the players still available to pick
func (d *Draft) Staged() map[string]Player {
	return clonePlayers(d.staged)
}

// StagedPlayer returns the staged entry for id
func (d *Draft) StagedPlayer(id string) (Player, bool) {
	p, ok := d.staged[id]
	if !ok {
		return Player{}, false
	}
	return p.clone(), true
}

// PickingTeam returns the index of the team whose turn it is
func (d *Draft) PickingTeam() int {
	return d.picking
}

// PickingCaptain returns the captain whose turn it is
func (d *Draft) PickingCaptain() string {
	return d.captains[d.picking]
}
