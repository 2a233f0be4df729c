// Package session holds the process-lifetime auth state for the app.
// The store is constructed once at startup and handed to whatever needs
// it; there is no package-level instance.
package session

import (
	"log"
	"strings"
	"sync"
)

// mockTokenPrefix derives a placeholder access token from a device code
// until the real device-code exchange lands.
const mockTokenPrefix = "mock_access_token_"

// State is a snapshot of the auth state. LoggedIn is true exactly when
// AccessToken is non-empty.
type State struct {
	AccessToken string
	LoggedIn    bool
}

// Store holds the session state and its observers.
type Store struct {
	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	nextID int
	logger *log.Logger
}

// NewStore returns a logged-out store. A nil logger falls back to the
// process default.
func NewStore(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{subs: make(map[int]func(State)), logger: logger}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LoggedIn reports whether a login has succeeded and not been cleared.
func (s *Store) LoggedIn() bool {
	return s.State().LoggedIn
}

// LoginWithDeviceCode exchanges a device code for an access token and
// stores it. A blank code logs a warning and changes nothing. Logging in
// again overwrites the previous token.
func (s *Store) LoginWithDeviceCode(code string) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		s.logger.Printf("session: login attempted with empty device code")
		return
	}
	s.set(State{AccessToken: mockTokenPrefix + trimmed, LoggedIn: true})
	s.logger.Printf("session: logged in via device code")
}

// Logout clears the session unconditionally. Safe to call when already
// logged out.
func (s *Store) Logout() {
	s.set(State{})
	s.logger.Printf("session: logged out")
}

// Subscribe registers fn to run after every transition and returns an
// unsubscribe func. Callbacks run synchronously on the goroutine that
// triggered the transition; order between subscribers is not specified.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// set commits the new state, then notifies outside the lock so a callback
// can call back into the store.
func (s *Store) set(next State) {
	s.mu.Lock()
	s.state = next
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(next)
	}
}
