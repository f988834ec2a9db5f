package pug

// NeedReport describes what is still missing before a pug can be staged
type NeedReport struct {
	// Captains is the number of captain-eligible players still needed
	Captains int

	// Roles maps each role that is short to the number of players still needed.
	// Satisfied roles are absent.
	Roles map[Role]int
}

// RoleDeficit is a single entry of a NeedReport in role order
type RoleDeficit struct {
	Role  Role
	Count int
}

// Satisfied reports whether nothing is missing
func (n NeedReport) Satisfied() bool {
	return n.Captains == 0 && len(n.Roles) == 0
}

// Deficits lists the short roles in the configured role order
func (n NeedReport) Deficits(cfg *Config) []RoleDeficit {
	var out []RoleDeficit
	for _, r := range cfg.Roles {
		if count, ok := n.Roles[r]; ok {
			out = append(out, RoleDeficit{Role: r, Count: count})
		}
	}
	return out
}

// CanStage reports whether players cover enough captains and every role.
// A player offering the same role twice counts twice.
func CanStage(cfg *Config, players map[string]Player) bool {
	roleCount := make(map[Role]int, len(cfg.Roles))
	captainCount := 0

	for _, p := range players {
		if p.Captain {
			captainCount++
		}
		for _, r := range p.Roles {
			roleCount[r]++
		}
	}

	if captainCount < cfg.Captains {
		return false
	}

	for _, r := range cfg.Roles {
		if roleCount[r] < cfg.CopiesPerRole {
			return false
		}
	}
	return true
}

// Need counts down from the staging targets and reports what is left
func Need(cfg *Config, players map[string]Player) NeedReport {
	roleCount := make(map[Role]int, len(cfg.Roles))
	for _, r := range cfg.Roles {
		roleCount[r] = cfg.CopiesPerRole
	}
	captainCount := cfg.Captains

	for _, p := range players {
		if p.Captain && captainCount > 0 {
			captainCount--
		}
		for _, r := range p.Roles {
			if roleCount[r] > 0 {
				roleCount[r]--
			}
		}
	}

	report := NeedReport{
		Captains: captainCount,
		Roles:    make(map[Role]int),
	}
	for r, count := range roleCount {
		if count > 0 {
			report.Roles[r] = count
		}
	}
	return report
}
