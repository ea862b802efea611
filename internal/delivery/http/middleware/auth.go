package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "session"

// TokenFromRequest returns the session token from the session cookie, falling back
// to an "Authorization: Bearer" header. It returns "" when neither is present.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}

// LoadSession resolves the request's session once and stores it with domain.WithSession.
// Requests without a valid session continue anonymously; gating is left to
// RequireSession and RequireAdmin.
func LoadSession(auth domain.AuthService, logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		session, err := auth.CurrentSession(r.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrNotAuthenticated) {
				next.ServeHTTP(w, r)
				return
			}
			logger.ErrorContext(r.Context(), "session lookup failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteInternalError(w)
			return
		}
		recordSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(domain.WithSession(r.Context(), session)))
	})
}

// RequireSession responds 401 unless LoadSession attached a session.
func RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := domain.SessionFromContext(r.Context()); !ok {
			h.WriteDomainError(w, domain.ErrNotAuthenticated, "session")
			return
		}
		next(w, r)
	}
}

// RequireAdmin responds 401 without a session and 403 when the session is not an admin's.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := domain.SessionFromContext(r.Context())
		if !ok {
			h.WriteDomainError(w, domain.ErrNotAuthenticated, "session")
			return
		}
		if !s.IsAdmin {
			h.WriteDomainError(w, domain.ErrForbidden, "session")
			return
		}
		next(w, r)
	}
}
