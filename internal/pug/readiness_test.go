package pug

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// highlanderRoster adds two single-role players per role, named like
// RED_player_0 and BLU_player_0 for the first role
func highlanderRoster(t *testing.T, cfg *Config, captain bool) *Roster {
	t.Helper()

	roster := NewRoster(cfg)
	for _, prefix := range []string{"RED_", "BLU_"} {
		for i, r := range cfg.Roles {
			require.NoError(t, roster.Add(fmt.Sprintf("%splayer_%d", prefix, i), []Role{r}, captain))
		}
	}
	return roster
}

func TestNeed_Empty(t *testing.T) {
	cfg := DefaultConfig()

	need := Need(cfg, map[string]Player{})

	assert.Equal(t, 2, need.Captains)
	require.Len(t, need.Roles, len(cfg.Roles))
	for _, r := range cfg.Roles {
		assert.Equal(t, 2, need.Roles[r])
	}
	assert.False(t, need.Satisfied())
}

func TestNeed_EachAddRemovesOneDeficit(t *testing.T) {
	cfg := DefaultConfig()

	for _, r := range cfg.Roles {
		roster := NewRoster(cfg)

		require.NoError(t, roster.Add("first", []Role{r}, false))
		assert.Equal(t, 1, Need(cfg, roster.Players()).Roles[r])

		require.NoError(t, roster.Add("second", []Role{r}, false))
		_, short := Need(cfg, roster.Players()).Roles[r]
		assert.False(t, short, "role %s should be satisfied", r)

		require.NoError(t, roster.Add("third", []Role{r}, false))
		_, short = Need(cfg, roster.Players()).Roles[r]
		assert.False(t, short, "role %s should never go negative", r)
	}
}

func TestNeed_CaptainsFloorAtZero(t *testing.T) {
	cfg := DefaultConfig()
	roster := NewRoster(cfg)

	require.NoError(t, roster.Add("a", []Role{RoleScout}, true))
	assert.Equal(t, 1, Need(cfg, roster.Players()).Captains)

	require.NoError(t, roster.Add("b", []Role{RoleScout}, true))
	require.NoError(t, roster.Add("c", []Role{RoleScout}, true))
	assert.Equal(t, 0, Need(cfg, roster.Players()).Captains)
}

func TestNeed_WhenStageable(t *testing.T) {
	cfg := DefaultConfig()
	roster := highlanderRoster(t, cfg, true)

	need := Need(cfg, roster.Players())

	assert.True(t, need.Satisfied())
	assert.Empty(t, need.Deficits(cfg))
}

func TestNeed_DeficitsFollowRoleOrder(t *testing.T) {
	cfg := DefaultConfig()
	roster := NewRoster(cfg)
	require.NoError(t, roster.Add("a", []Role{RoleScout, RoleSoldier, RolePyro, RoleDemoman, RoleHeavy, RoleEngineer}, true))
	require.NoError(t, roster.Add("b", []Role{RoleScout, RoleSoldier, RolePyro, RoleDemoman, RoleHeavy, RoleEngineer, RoleSniper}, false))

	need := Need(cfg, roster.Players())

	assert.Equal(t, 1, need.Captains)
	assert.Equal(t, []RoleDeficit{
		{Role: RoleMedic, Count: 2},
		{Role: RoleSniper, Count: 1},
		{Role: RoleSpy, Count: 2},
	}, need.Deficits(cfg))
}

func TestCanStage_FullHighlander(t *testing.T) {
	cfg := DefaultConfig()
	roster := highlanderRoster(t, cfg, true)

	assert.True(t, CanStage(cfg, roster.Players()))
}

func TestCanStage_OneCaptainIsNotEnough(t *testing.T) {
	cfg := DefaultConfig()
	roster := highlanderRoster(t, cfg, false)
	p, _ := roster.Get("RED_player_0")
	require.NoError(t, roster.Add(p.ID, p.Roles, true))

	assert.False(t, CanStage(cfg, roster.Players()))

	q, _ := roster.Get("BLU_player_3")
	require.NoError(t, roster.Add(q.ID, q.Roles, true))

	assert.True(t, CanStage(cfg, roster.Players()))
}

func TestCanStage_MissingRoleCopy(t *testing.T) {
	cfg := DefaultConfig()
	roster := highlanderRoster(t, cfg, true)
	require.NoError(t, roster.Remove("BLU_player_6"))

	assert.False(t, CanStage(cfg, roster.Players()))
	assert.Equal(t, map[Role]int{RoleMedic: 1}, Need(cfg, roster.Players()).Roles)
}

func TestCanStage_Empty(t *testing.T) {
	assert.False(t, CanStage(DefaultConfig(), nil))
}

func TestCanStage_MultiRolePlayersCover(t *testing.T) {
	cfg := DefaultConfig()
	roster := NewRoster(cfg)
	require.NoError(t, roster.Add("a", cfg.Roles, true))
	require.NoError(t, roster.Add("b", cfg.Roles, true))

	assert.True(t, CanStage(cfg, roster.Players()))
}

func TestCanStage_CustomConfig(t *testing.T) {
	cfg := &Config{
		Roles:         []Role{"attack", "defense"},
		CopiesPerRole: 3,
		Captains:      2,
		TeamColors:    [NumTeams]string{"home", "away"},
	}
	require.NoError(t, cfg.Validate())

	roster := NewRoster(cfg)
	require.NoError(t, roster.Add("a", []Role{"attack", "defense"}, true))
	require.NoError(t, roster.Add("b", []Role{"attack", "defense"}, true))
	assert.False(t, CanStage(cfg, roster.Players()))

	require.NoError(t, roster.Add("c", []Role{"attack", "defense"}, false))
	assert.True(t, CanStage(cfg, roster.Players()))
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{name: "default", cfg: DefaultConfig()},
		{name: "nil", cfg: nil, wantErr: true},
		{name: "no roles", cfg: &Config{CopiesPerRole: 2, Captains: 2}, wantErr: true},
		{name: "duplicate role", cfg: &Config{Roles: []Role{RoleScout, RoleScout}, CopiesPerRole: 2, Captains: 2}, wantErr: true},
		{name: "zero copies", cfg: &Config{Roles: []Role{RoleScout}, Captains: 2}, wantErr: true},
		{name: "fewer copies than teams", cfg: &Config{Roles: []Role{RoleScout, RoleMedic}, CopiesPerRole: 1, Captains: 2}, wantErr: true},
		{name: "spare copies", cfg: &Config{Roles: []Role{RoleScout, RoleMedic}, CopiesPerRole: 3, Captains: 2}},
		{name: "one captain", cfg: &Config{Roles: []Role{RoleScout}, CopiesPerRole: 2, Captains: 1}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
