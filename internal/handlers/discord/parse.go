package discord

import (
	"strings"
)

// Command names understood by the router
const (
	CommandAdd    = "add"
	CommandRemove = "remove"
	CommandPick   = "pick"
	CommandAbort  = "abort"
	CommandNeed   = "need"
	CommandStatus = "status"
	CommandLast   = "last"
)

// captainFlag marks an add as willing to captain
const captainFlag = "captain"

// Command is a parsed chat command
type Command struct {
	Name string
	Args []string
}

// ParseCommand reads a prefixed text command such as ";add scout captain".
// It reports false when content is not a command.
func ParseCommand(prefix, content string) (*Command, bool) {
	if prefix == "" {
		return nil, false
	}

	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, prefix) {
		return nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return nil, false
	}

	return &Command{
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
	}, true
}

// splitAddArgs separates the captain flag from the role names
func splitAddArgs(args []string) (roles []string, captain bool) {
	for _, arg := range args {
		if strings.EqualFold(arg, captainFlag) {
			captain = true
			continue
		}
		roles = append(roles, arg)
	}
	return roles, captain
}
