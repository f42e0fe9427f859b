package http

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"sync"
	"time"
)

// sessionTTL is how long a kitchen staff login stays valid without
// re-authenticating.
const sessionTTL = 30 * time.Minute

// SessionStore issues and validates opaque bearer tokens for kitchen staff.
// Tokens live in memory: a restart logs everyone out, which is acceptable for
// a single-instance canteen deployment and keeps the store dependency-free.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Issue creates a new session token valid for the session TTL.
func (s *SessionStore) Issue() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = s.now().Add(sessionTTL)

	return token, nil
}

// IsValid reports whether the token belongs to a live session.
// Expired sessions are removed on sight.
func (s *SessionStore) IsValid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if s.now().After(expiry) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// Revoke ends the session for the given token. Revoking an unknown token is
// a no-op.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// constantTimeEquals compares two credential strings in constant time.
func constantTimeEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
