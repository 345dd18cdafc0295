package gateway

import "storefront/internal/domain/entity"

// StoredSession is the persisted session record: the bearer token and the
// last known user.
type StoredSession struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// SessionStore persists the session across restarts. Implementations must
// be safe for concurrent use.
type SessionStore interface {
	// Load returns the persisted session, or (nil, nil) when none exists.
	Load() (*StoredSession, error)

	// Save persists the session, replacing any previous one.
	Save(session *StoredSession) error

	// Clear removes the persisted session. Clearing an empty store is not
	// an error.
	Clear() error
}
