package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventmanager/internal/domain"

	"github.com/gofrs/uuid/v5"
)

const minPasswordLen = 8

type authService struct {
	userRepo     domain.UserRepository
	sessionRepo  domain.SessionRepository
	hasher       domain.PasswordHasher
	issuer       domain.TokenIssuer
	verifier     domain.TokenVerifier
	emailService domain.EmailService
	logger       *slog.Logger

	sessionTTL     time.Duration
	contextTimeout time.Duration
	now            func() time.Time
}

// AuthConfig holds the session lifetime and the per-call timeout for AuthService.
type AuthConfig struct {
	SessionTTL time.Duration
	Timeout    time.Duration
}

// NewAuthService creates an AuthService. emailService may be nil to skip welcome emails.
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	verifier domain.TokenVerifier,
	emailService domain.EmailService,
	logger *slog.Logger,
	cfg AuthConfig,
) domain.AuthService {
	return &authService{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		hasher:         hasher,
		issuer:         issuer,
		verifier:       verifier,
		emailService:   emailService,
		logger:         logger,
		sessionTTL:     cfg.SessionTTL,
		contextTimeout: cfg.Timeout,
		now:            time.Now,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string, isAdmin bool) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	username, err := requireText("username", username)
	if err != nil {
		return nil, err
	}
	email, err = validEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLen {
		return nil, domain.Invalid(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(username, email, isAdmin, s.now().UTC())
	user.PasswordHash = hash
	user.Salt = salt
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username, "is_admin", user.IsAdmin)

	if s.emailService != nil {
		data := &domain.WelcomeMessageEmailData{Email: user.Email, Username: user.Username}
		if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "welcome email failed", "user_id", user.ID, "err", err)
		}
	}
	return user, nil
}

func (s *authService) Verify(ctx context.Context, username, password string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.verify(ctx, username, password)
}

func (s *authService) verify(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.verify(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	if n, err := s.sessionRepo.DeleteExpired(ctx); err != nil {
		s.logger.WarnContext(ctx, "purge expired sessions failed", "err", err)
	} else if n > 0 {
		s.logger.DebugContext(ctx, "purged expired sessions", "count", n)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return "", nil, fmt.Errorf("generate session id: %w", err)
	}
	session := &domain.Session{
		ID:        id.String(),
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		ExpiresAt: s.now().Add(s.sessionTTL).Truncate(time.Second),
	}
	if err := s.sessionRepo.Create(ctx, session.ID, session.UserID, session.ExpiresAt); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}
	token, err := s.issuer.Issue(session)
	if err != nil {
		return "", nil, err
	}
	s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID, "username", user.Username)
	return token, session, nil
}

func (s *authService) CurrentSession(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	session, err := s.verifier.Verify(token)
	if err != nil {
		return nil, domain.ErrNotAuthenticated
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ok, err := s.sessionRepo.Exists(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	session, err := s.verifier.Verify(token)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.logger.InfoContext(ctx, "user logged out", "user_id", session.UserID, "username", session.Username)
	return nil
}
