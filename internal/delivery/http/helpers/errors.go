package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventmanager/internal/domain"
)

// WriteDomainError writes the response for a known domain error and reports
// whether err was one. entity names the resource in 404 messages.
func WriteDomainError(w http.ResponseWriter, err error, entity string) bool {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, vErr.Reason)
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, entity+" not found")
	case errors.Is(err, domain.ErrDuplicateUsername):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "Username already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrNotAuthenticated):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Not logged in")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, domain.ErrForbidden.Error())
	default:
		return false
	}
	return true
}

// WriteServiceError maps err with WriteDomainError. Anything unrecognised is
// logged and returned as a bare 500.
func WriteServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, entity string) {
	if WriteDomainError(w, err, entity) {
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	WriteInternalError(w)
}
