package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventmanager/internal/domain"
)

// accessRecord is shared down the chain so inner middleware can report the
// session it resolved to the access log.
type accessRecord struct {
	session *domain.Session
}

type accessRecordKey struct{}

// recordSession notes s on the access record of ctx, if the request is being logged.
func recordSession(ctx context.Context, s *domain.Session) {
	if rec, ok := ctx.Value(accessRecordKey{}).(*accessRecord); ok {
		rec.session = s
	}
}

// statusRecorder captures the status code and body size of a response.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// LoggingMiddleware writes one access line per request: method, path, status,
// response bytes, duration, and the user resolved by LoadSession ("anonymous" otherwise).
// Bodies are never logged.
func LoggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &accessRecord{}
		sw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), accessRecordKey{}, rec)))

		actor := "anonymous"
		if rec.session != nil {
			actor = rec.session.Username
		}
		level := slog.LevelInfo
		if sw.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
			"actor", actor,
		)
	})
}
