package domain

import "errors"

// Sentinel errors shared by repositories, services, and controllers.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrForbidden          = errors.New("admin privileges required")
)

// ValidationError carries a human-readable reason for rejected input.
// errors.Is(err, ErrInvalidInput) holds for every ValidationError.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid returns a ValidationError with the given reason.
func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
