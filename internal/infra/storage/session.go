package storage

import (
	"encoding/json"
	"os"
	"sync"

	"storefront/config"
	"storefront/internal/domain/gateway"
	"storefront/internal/errors"
)

type sessionStore struct {
	mu   sync.Mutex
	path string
}

// NewSessionStore creates a session store at the configured path. The file
// holds the token and the last known user.
func NewSessionStore(cfg *config.Config) gateway.SessionStore {
	return &sessionStore{path: cfg.Session.Path}
}

func (s *sessionStore) Load() (*gateway.StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read session")
	}

	var session gateway.StoredSession
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt session file means no session; verification would have
		// rejected it anyway.
		return nil, nil
	}
	if session.Token == "" {
		return nil, nil
	}

	return &session, nil
}

func (s *sessionStore) Save(session *gateway.StoredSession) error {
	if session == nil || session.Token == "" {
		return errors.New("cannot persist an empty session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return atomicWriteJSON(s.path, session)
}

func (s *sessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}
