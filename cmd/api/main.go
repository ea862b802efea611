// Command api serves the Event Manager HTTP API.
//
//	@title			Event Manager API
//	@version		1.0
//	@description	CRUD API for events and their attendees, with cookie-based sessions.
//	@BasePath		/
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						session
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"eventmanager/config"
	_ "eventmanager/docs"
	"eventmanager/internal/adapters/auth"
	"eventmanager/internal/adapters/email"
	httpdelivery "eventmanager/internal/delivery/http"
	"eventmanager/internal/delivery/http/controllers"
	"eventmanager/internal/migrate"
	"eventmanager/internal/repository/postgres"
	"eventmanager/internal/services"

	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		cancel()
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if err := migrate.Up(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("database ready")

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	// Adapters
	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.Region,
			AccessKeyID:     cfg.Email.AccessKeyID,
			SecretAccessKey: cfg.Email.SecretAccessKey,
		},
	}, logger)
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	// Services
	authSvc := services.NewAuthService(
		userRepo,
		sessionRepo,
		auth.NewBcryptHasher(cfg.BcryptCost),
		auth.NewJWTIssuer(cfg.SessionSecret),
		auth.NewJWTVerifier(cfg.SessionSecret),
		emailSvc,
		logger,
		services.AuthConfig{SessionTTL: cfg.SessionTTL, Timeout: cfg.RequestTimeout},
	)
	eventSvc := services.NewEventService(eventRepo, logger, cfg.RequestTimeout)
	attendeeSvc := services.NewAttendeeService(attendeeRepo, eventRepo, emailSvc, logger, cfg.RequestTimeout)

	router := httpdelivery.NewRouter(
		controllers.NewHomeController(logger, db),
		controllers.NewAuthController(logger, authSvc, cfg.CookieSecure),
		controllers.NewEventController(logger, eventSvc, attendeeSvc),
		controllers.NewAttendeeController(logger, attendeeSvc),
		httpdelivery.RouterConfig{EnforceAdminWrites: cfg.EnforceAdminWrites},
	)
	handler := httpdelivery.NewHandler(router, authSvc, logger, httpdelivery.HandlerConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
