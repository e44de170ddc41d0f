// Package session drives the card-holder dialogue: greeting, PIN
// authentication and the main menu loop that dispatches transactions.
package session

import (
	"time"

	"github.com/google/uuid"
)

// State tracks where a session is in its life cycle.
type State uint8

const (
	// StateUnauthenticated is the idle state between customers.
	StateUnauthenticated State = iota
	// StateAuthenticating means credentials are being collected.
	StateAuthenticating
	// StateAuthenticated means the customer passed the PIN check and
	// may run transactions.
	StateAuthenticated
)

// String returns a label suitable for logs.
func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is one customer's interaction, from greeting to sign-off.
type Session struct {
	// ID identifies the session in logs and journal entries.
	ID uuid.UUID
	// Account is the authenticated account number, zero until the
	// PIN check succeeds.
	Account int
	// State is the current life cycle state.
	State State
	// StartedAt is when the greeting was shown.
	StartedAt time.Time
}

// newSession returns a fresh unauthenticated session.
func newSession() Session {
	return Session{
		ID:        uuid.New(),
		State:     StateUnauthenticated,
		StartedAt: time.Now(),
	}
}

// Duration reports how long the session has been running.
func (s Session) Duration() time.Duration {
	return time.Since(s.StartedAt)
}
