package discord

import (
	"sync"

	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
	"github.com/bwmarrin/discordgo"
)

// directory remembers the display name each Discord user was last seen
// with. Pug players are identified by display name, so direct messages and
// renames need the mapping in both directions.
type directory struct {
	mu     sync.RWMutex
	byUser map[string]string
	byName map[string]string
}

func newDirectory() *directory {
	return &directory{
		byUser: make(map[string]string),
		byName: make(map[string]string),
	}
}

// Observe records that userID is now called name and returns the name it
// had before, if it was known. A name held by another user is refused with
// ErrNameTaken and nothing is recorded.
func (d *directory) Observe(userID, name string) (string, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	prior, known := d.byUser[userID]
	if holder, ok := d.byName[name]; ok && holder != userID {
		return prior, known, pugService.ErrNameTaken
	}

	if known && prior != name && d.byName[prior] == userID {
		delete(d.byName, prior)
	}

	d.byUser[userID] = name
	d.byName[name] = userID
	return prior, known, nil
}

// UserID returns the user currently known by name
func (d *directory) UserID(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	id, ok := d.byName[name]
	return id, ok
}

// displayName is the name a member shows in the guild: nickname, then
// global name, then username
func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
