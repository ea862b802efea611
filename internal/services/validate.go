package services

import (
	"regexp"
	"strings"

	"eventmanager/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// requireText trims s and rejects it when blank.
func requireText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.Invalid(field + " is required")
	}
	return s, nil
}

func validEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !emailRegexp.MatchString(s) {
		return "", domain.Invalid("invalid email format")
	}
	return s, nil
}

func validEventID(id int64) error {
	if id <= 0 {
		return domain.Invalid("event_id must be a positive integer")
	}
	return nil
}
