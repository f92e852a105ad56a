package connection

import "sync"

// State mirrors the push-channel lifecycle for the presentation layer.
type State struct {
	IsConnected       bool
	IsConnecting      bool
	UserID            string
	ReconnectAttempts uint64
	LastError         string
}

type Store struct {
	mu    sync.Mutex
	state State
}

func New() *Store {
	return &Store{}
}

func (s *Store) Connecting(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsConnecting = true
	s.state.UserID = userID
	s.state.LastError = ""
}

func (s *Store) Established() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsConnected = true
	s.state.IsConnecting = false
	s.state.ReconnectAttempts = 0
	s.state.LastError = ""
}

func (s *Store) Failed(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsConnected = false
	s.state.IsConnecting = false
	s.state.LastError = message
	s.state.ReconnectAttempts++
}

func (s *Store) Closed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsConnected = false
	s.state.IsConnecting = false
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}
