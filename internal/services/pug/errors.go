package pug

// ServiceError is a custom error type for pug service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotDrafting      ServiceError = "pug is not ready for picking"
	ErrNotCaptain       ServiceError = "only captains can pick"
	ErrNotYourPick      ServiceError = "it is not your pick"
	ErrNotAbortCaptain  ServiceError = "only captains can abort the draft"
	ErrPlayerNotStaged  ServiceError = "player is not available to pick"
	ErrUnknownRole      ServiceError = "unknown role"
	ErrPlayerInDraft    ServiceError = "player is already in the running draft"
	ErrNameTaken        ServiceError = "that name is already used by another player"
	ErrNoMatch          ServiceError = "no match has been played in this channel yet"
	ErrMissingChannel   ServiceError = "channel ID cannot be empty"
	ErrMissingPlayer    ServiceError = "player ID cannot be empty"
	ErrNilConfig        ServiceError = "config cannot be nil"
	ErrNilPugConfig     ServiceError = "pug config cannot be nil"
	ErrNilMatchRepo     ServiceError = "match repository cannot be nil"
	ErrNilSampler       ServiceError = "sampler cannot be nil"
	ErrNilClock         ServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator ServiceError = "UUID generator cannot be nil"
)
