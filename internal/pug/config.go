package pug

import "fmt"

// NumTeams is the number of teams in a pug
const NumTeams = 2

// Role is a playable class a player can offer to fill
type Role string

// The nine classes of a highlander game
const (
	RoleScout    Role = "scout"
	RoleSoldier  Role = "soldier"
	RolePyro     Role = "pyro"
	RoleDemoman  Role = "demoman"
	RoleHeavy    Role = "heavy"
	RoleEngineer Role = "engineer"
	RoleMedic    Role = "medic"
	RoleSniper   Role = "sniper"
	RoleSpy      Role = "spy"
)

// HighlanderRoles is the default ordered role set
var HighlanderRoles = []Role{
	RoleScout,
	RoleSoldier,
	RolePyro,
	RoleDemoman,
	RoleHeavy,
	RoleEngineer,
	RoleMedic,
	RoleSniper,
	RoleSpy,
}

// Config holds the game composition the state machine counts against
type Config struct {
	// Roles is the ordered set of roles, one slot per role per team
	Roles []Role

	// CopiesPerRole is how many willing players each role needs before staging
	CopiesPerRole int

	// Captains is how many captain-eligible players are needed before staging
	Captains int

	// TeamColors names the teams for presentation, indexed by team
	TeamColors [NumTeams]string
}

// DefaultConfig returns the highlander configuration
func DefaultConfig() *Config {
	roles := make([]Role, len(HighlanderRoles))
	copy(roles, HighlanderRoles)

	return &Config{
		Roles:         roles,
		CopiesPerRole: NumTeams,
		Captains:      NumTeams,
		TeamColors:    [NumTeams]string{"red", "blue"},
	}
}

// Validate checks that the configuration can be drafted
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config cannot be nil", ErrInvalidConfig)
	}

	if len(c.Roles) == 0 {
		return fmt.Errorf("%w: at least one role is required", ErrInvalidConfig)
	}

	seen := make(map[Role]bool, len(c.Roles))
	for _, r := range c.Roles {
		if r == "" {
			return fmt.Errorf("%w: empty role name", ErrInvalidConfig)
		}
		if seen[r] {
			return fmt.Errorf("%w: duplicate role %q", ErrInvalidConfig, r)
		}
		seen[r] = true
	}

	// Each team drafts one player per role, so fewer copies can strand a draft
	if c.CopiesPerRole < NumTeams {
		return fmt.Errorf("%w: need at least %d copies per role", ErrInvalidConfig, NumTeams)
	}

	if c.Captains < NumTeams {
		return fmt.Errorf("%w: need at least %d captains", ErrInvalidConfig, NumTeams)
	}

	return nil
}

// IsRole reports whether r is part of the configured role set
func (c *Config) IsRole(r Role) bool {
	for _, known := range c.Roles {
		if known == r {
			return true
		}
	}
	return false
}

// FilterRoles splits roles into recognized and ignored values, keeping order
func (c *Config) FilterRoles(roles []Role) (valid []Role, ignored []Role) {
	for _, r := range roles {
		if c.IsRole(r) {
			valid = append(valid, r)
		} else {
			ignored = append(ignored, r)
		}
	}
	return valid, ignored
}

// PicksPerTeam is the number of drafted players each team needs.
// The captain takes the last remaining slot when the game is made.
func (c *Config) PicksPerTeam() int {
	return len(c.Roles) - 1
}

// TeamColor returns the presentation name of a team
func (c *Config) TeamColor(team int) string {
	if team < 0 || team >= NumTeams {
		return ""
	}
	return c.TeamColors[team]
}
