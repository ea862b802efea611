package domain

import (
	"context"
	"time"
)

// Session is the authenticated identity attached to a request.
type Session struct {
	ID        string    `json:"-"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	ExpiresAt time.Time `json:"-"`
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(s *Session) (string, error)
}

// TokenVerifier checks a session token's signature and expiry and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*Session, error)
}

// SessionRepository stores the server-side half of a session so that logout can revoke tokens.
type SessionRepository interface {
	Create(ctx context.Context, id string, userID int64, expiresAt time.Time) error
	Exists(ctx context.Context, id string) (bool, error)
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// AuthService covers registration, credential checks, and the session lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, email, password string, isAdmin bool) (*User, error)
	// Verify returns ErrInvalidCredentials for both unknown users and wrong passwords.
	Verify(ctx context.Context, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (token string, session *Session, err error)
	CurrentSession(ctx context.Context, token string) (*Session, error)
	// Logout is idempotent: unknown, expired, or malformed tokens are not an error.
	Logout(ctx context.Context, token string) error
}

type sessionKey struct{}

// WithSession returns a context carrying the authenticated session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by WithSession, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// Actor names the caller for log lines; anonymous requests return "anonymous".
func Actor(ctx context.Context) string {
	if s, ok := SessionFromContext(ctx); ok {
		return s.Username
	}
	return "anonymous"
}
