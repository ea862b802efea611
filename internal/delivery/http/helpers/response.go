package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeForbidden     = "forbidden"
	ErrCodeNotFound      = "not_found"
	ErrCodeInternalError = "internal_error"
)

// InternalErrorMessage is the only text a 5xx response ever carries.
const InternalErrorMessage = "internal server error"

// APIError is the body of every non-2xx response.
// swagger:model APIError
type APIError struct {
	Error string `json:"error" example:"event not found"`
	Code  string `json:"code" example:"not_found"`
}

// MessageResponse is the body of responses that only confirm an action.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Event deleted"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes data as-is.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteMessage writes {"message": message}.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteJSONError writes {"error": message, "code": code} with statusCode.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, APIError{Error: message, Code: code})
}

// WriteInternalError writes a 500 without exposing the underlying error.
func WriteInternalError(w http.ResponseWriter) {
	WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, InternalErrorMessage)
}
