package session

import (
	"sync"

	"github.com/Ralet11/pandaApp/internal/entities"
)

// Store holds the authenticated user session.
type Store struct {
	mu      sync.Mutex
	session entities.Session
}

func New() *Store {
	return &Store{}
}

func (s *Store) Set(session entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = entities.Session{}
}

func (s *Store) Session() entities.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}
