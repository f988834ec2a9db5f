package pug

// Error is the error type returned by the pug state machine
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrMissingRole is returned when a player is added without any recognized role
	ErrMissingRole Error = "no recognized role given"

	// ErrUnknownPlayer is returned when a player id is not present where it is looked up
	ErrUnknownPlayer Error = "unknown player"

	// ErrUnknownRole is returned when a pick names a role outside the role set
	ErrUnknownRole Error = "unknown role"

	// ErrRoleAlreadyPicked is returned when the picking team already filled the role
	ErrRoleAlreadyPicked Error = "role already picked for this team"

	// ErrInvalidState is returned when an operation is called out of sequence,
	// e.g. staging without enough players or making a game before the teams are full
	ErrInvalidState Error = "invalid pug state"

	// ErrInvalidConfig is returned by Config.Validate
	ErrInvalidConfig Error = "invalid pug config"
)
