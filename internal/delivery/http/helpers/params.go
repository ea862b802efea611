package helpers

import (
	"net/http"
	"strconv"
)

// PathID parses the {id} path value as a positive int64. On failure it writes
// 400 "invalid <entity> id" and returns false.
func PathID(w http.ResponseWriter, r *http.Request, entity string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid "+entity+" id")
		return 0, false
	}
	return id, true
}

// QueryID parses an optional positive integer query parameter. A missing
// parameter returns (nil, true).
func QueryID(w http.ResponseWriter, r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, name+" must be an integer")
		return nil, false
	}
	return &id, true
}
