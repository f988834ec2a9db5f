package models

import (
	"time"
)

// Match is the record of a finished draft, kept for history
type Match struct {
	// ID is the unique identifier for the match
	ID string `json:"id"`

	// ChannelID is the Discord channel the pug ran in
	ChannelID string `json:"channel_id"`

	// Captains holds the captain of each team, indexed like Teams
	Captains [2]string `json:"captains"`

	// Teams contains the final line-up of each team
	Teams []MatchTeam `json:"teams"`

	// CreatedAt is when the game was made
	CreatedAt time.Time `json:"created_at"`
}

// MatchTeam is one side of a match
type MatchTeam struct {
	// Color is the team's display color, e.g. "Red"
	Color string `json:"color"`

	// Captain is the player who drafted this team
	Captain string `json:"captain"`

	// Slots lists every role on the team in configured role order
	Slots []MatchSlot `json:"slots"`
}

// MatchSlot is a single role on a team
type MatchSlot struct {
	Role     string `json:"role"`
	PlayerID string `json:"player_id"`
}

// PlayerFor returns who plays role on the team, if anyone
func (t MatchTeam) PlayerFor(role string) (string, bool) {
	for _, slot := range t.Slots {
		if slot.Role == role {
			return slot.PlayerID, true
		}
	}
	return "", false
}

// Players returns the team's player IDs in slot order
func (t MatchTeam) Players() []string {
	ids := make([]string, 0, len(t.Slots))
	for _, slot := range t.Slots {
		ids = append(ids, slot.PlayerID)
	}
	return ids
}
