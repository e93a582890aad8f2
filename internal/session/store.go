package session

import "sync"

// Store holds the bearer credentials for the current shopping session: a
// single writer, many readers, cleared on logout or on the first 401
// observed.
type Store struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	onExpired    func()
}

func NewStore() *Store {
	return &Store{}
}

// OnExpired registers the hook invoked when the session is invalidated by the
// server (a 401 response). The hook fires at most once per stored token even
// when several in-flight calls observe the 401 concurrently.
func (s *Store) OnExpired(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpired = fn
}

func (s *Store) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Clear removes both tokens without firing the expiry hook. Used on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
}

// Expire removes both tokens and fires the expiry hook, but only if a token
// was still present. Concurrent 401s race to clear the same token; the loser
// finds the store already empty and stays silent.
func (s *Store) Expire() {
	s.mu.Lock()
	hadToken := s.accessToken != ""
	s.accessToken = ""
	s.refreshToken = ""
	fn := s.onExpired
	s.mu.Unlock()

	if hadToken && fn != nil {
		fn()
	}
}
