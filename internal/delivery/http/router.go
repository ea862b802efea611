package http

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/controllers"
	"eventmanager/internal/delivery/http/middleware"
	"eventmanager/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig switches optional route guards.
type RouterConfig struct {
	// EnforceAdminWrites requires an admin session for event mutations.
	// When false the is_admin flag is advisory only.
	EnforceAdminWrites bool
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	home *controllers.HomeController,
	auth *controllers.AuthController,
	events *controllers.EventController,
	attendees *controllers.AttendeeController,
	cfg RouterConfig,
) *http.ServeMux {
	mux := http.NewServeMux()

	eventWrite := func(next http.HandlerFunc) http.HandlerFunc { return next }
	if cfg.EnforceAdminWrites {
		eventWrite = middleware.RequireAdmin
	}

	mux.HandleFunc("GET /{$}", home.Home)
	mux.HandleFunc("GET /healthz", home.Health)

	// Auth
	mux.HandleFunc("POST /register", auth.Register)
	mux.HandleFunc("POST /login", auth.Login)
	mux.HandleFunc("POST /logout", auth.Logout)
	mux.HandleFunc("GET /whoami", middleware.RequireSession(auth.WhoAmI))

	// Events
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("POST /events", eventWrite(events.CreateEvent))
	mux.HandleFunc("GET /events/{id}", events.GetEvent)
	mux.HandleFunc("PUT /events/{id}", eventWrite(events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{id}", eventWrite(events.DeleteEvent))
	mux.HandleFunc("GET /events/{id}/attendees", events.ListEventAttendees)

	// Attendees
	mux.HandleFunc("GET /attendees", attendees.ListAttendees)
	mux.HandleFunc("POST /attendees", attendees.CreateAttendee)
	mux.HandleFunc("GET /attendees/{id}", attendees.GetAttendee)
	mux.HandleFunc("PUT /attendees/{id}", attendees.UpdateAttendee)
	mux.HandleFunc("DELETE /attendees/{id}", attendees.DeleteAttendee)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// HandlerConfig configures the middleware chain around the router.
type HandlerConfig struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// NewHandler wraps router with request logging, CORS, body limits, and session loading,
// outermost first.
func NewHandler(router http.Handler, authSvc domain.AuthService, logger *slog.Logger, cfg HandlerConfig) http.Handler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = middleware.DefaultMaxBodyBytes
	}
	var h http.Handler = router
	h = middleware.LoadSession(authSvc, logger, h)
	h = middleware.BodyLimit(maxBody, h)
	h = middleware.CORS(cfg.AllowedOrigins, h)
	h = middleware.LoggingMiddleware(logger, h)
	return h
}
