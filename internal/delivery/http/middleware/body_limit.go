package middleware

import "net/http"

// DefaultMaxBodyBytes caps JSON request bodies at 1 MiB.
const DefaultMaxBodyBytes = 1 << 20

// BodyLimit rejects request bodies larger than maxBytes. Reads past the limit fail,
// which DecodeAndValidate reports as a 400.
func BodyLimit(maxBytes int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next.ServeHTTP(w, r)
	})
}
