package core

import (
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenSource provides the bearer token attached to every API request.
// An empty token is not an error at this layer; it is forwarded as-is
// and the server remains the authority on 401s.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, handy for one-shot tools and tests.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Session holds the bearer token of the active session.
// It is safe for concurrent use by overlapping requests.
type Session struct {
	mu    sync.RWMutex
	token string
}

var _ TokenSource = (*Session)(nil)

func NewSession(token string) *Session {
	return &Session{token: token}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// ExpiresAt peeks at the token's `exp` claim without verifying the
// signature; verification is the server's job.
// The zero time is returned when the token is absent or carries no expiry.
func (s *Session) ExpiresAt() time.Time {
	tok := s.Token()
	if tok == "" {
		return time.Time{}
	}
	claims := jwt.StandardClaims{}
	parser := new(jwt.Parser)
	if _, _, err := parser.ParseUnverified(tok, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(claims.ExpiresAt, 0)
}

// IsExpired reports whether the token has expired at `now`.
// A token without an expiry claim never expires client-side.
func (s *Session) IsExpired(now time.Time) bool {
	exp := s.ExpiresAt()
	if exp.IsZero() {
		return false
	}
	return now.After(exp)
}
