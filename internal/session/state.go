package session

import "github.com/MKhiriev/go-tieba/models"

// State is the validity of the session.
type State int

const (
	StateUnknown State = iota
	StateChecking
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of the store state. User is nil when nobody
// is signed in.
type Snapshot struct {
	User       *models.User
	IsLoggedIn bool
	Loading    bool
	State      State
	AppConfig  models.AppConfig
}
