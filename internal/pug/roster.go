package pug

import "sort"

// Player is a roster entry: who is available, for which roles, and whether
// they are willing to captain
type Player struct {
	// ID is the player's chat handle
	ID string

	// Roles lists the roles the player offered, in the order given
	Roles []Role

	// Captain marks the player as eligible to be drawn as a captain
	Captain bool
}

// HasRole reports whether the player offered r
func (p Player) HasRole(r Role) bool {
	for _, offered := range p.Roles {
		if offered == r {
			return true
		}
	}
	return false
}

func (p Player) clone() Player {
	roles := make([]Role, len(p.Roles))
	copy(roles, p.Roles)
	p.Roles = roles
	return p
}

// Roster holds the players waiting for the next draft
type Roster struct {
	cfg     *Config
	players map[string]Player
}

// NewRoster creates an empty roster validating roles against cfg
func NewRoster(cfg *Config) *Roster {
	return &Roster{
		cfg:     cfg,
		players: make(map[string]Player),
	}
}

// Add inserts or replaces the entry for id. Unrecognized roles are dropped;
// if nothing is left the roster is not touched and ErrMissingRole is returned.
func (r *Roster) Add(id string, roles []Role, captain bool) error {
	valid, _ := r.cfg.FilterRoles(roles)
	if len(valid) == 0 {
		return ErrMissingRole
	}

	r.players[id] = Player{
		ID:      id,
		Roles:   valid,
		Captain: captain,
	}
	return nil
}

// Remove deletes the entry for id
func (r *Roster) Remove(id string) error {
	if _, ok := r.players[id]; !ok {
		return ErrUnknownPlayer
	}
	delete(r.players, id)
	return nil
}

// Rename moves the entry for oldID to newID, if there is one
func (r *Roster) Rename(oldID, newID string) {
	renameEntry(r.players, oldID, newID)
}

// Get returns a copy of the entry for id
func (r *Roster) Get(id string) (Player, bool) {
	p, ok := r.players[id]
	if !ok {
		return Player{}, false
	}
	return p.clone(), true
}

// Has reports whether id is on the roster
func (r *Roster) Has(id string) bool {
	_, ok := r.players[id]
	return ok
}

// Len returns the number of players on the roster
func (r *Roster) Len() int {
	return len(r.players)
}

// Players returns a snapshot of the roster
func (r *Roster) Players() map[string]Player {
	return clonePlayers(r.players)
}

// IDs returns the player ids in sorted order
func (r *Roster) IDs() []string {
	return sortedIDs(r.players)
}

// drain hands over the entries and leaves the roster empty
func (r *Roster) drain() map[string]Player {
	players := r.players
	r.players = make(map[string]Player)
	return players
}

// restore puts an undrafted player back as a plain entry. An entry added
// while the draft was running is newer and wins.
func (r *Roster) restore(p Player) {
	if _, ok := r.players[p.ID]; ok {
		return
	}
	p.Captain = false
	r.players[p.ID] = p
}

// reinstate puts a player back exactly as they queued. An entry added while
// the draft was running is newer and wins.
func (r *Roster) reinstate(p Player) {
	if _, ok := r.players[p.ID]; ok {
		return
	}
	r.players[p.ID] = p
}

func renameEntry(players map[string]Player, oldID, newID string) {
	p, ok := players[oldID]
	if !ok || oldID == newID {
		return
	}
	delete(players, oldID)
	p.ID = newID
	players[newID] = p
}

func clonePlayers(players map[string]Player) map[string]Player {
	out := make(map[string]Player, len(players))
	for id, p := range players {
		out[id] = p.clone()
	}
	return out
}

func sortedIDs(players map[string]Player) []string {
	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
