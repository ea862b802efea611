package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventmanager/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendWelcomeMessage sends a welcome email using the "welcome" template and the given data.
func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if data == nil {
		return errors.New("welcome message data is nil")
	}
	return s.send(ctx, "welcome", data.Email, data)
}

// SendAttendeeConfirmation tells a new attendee which event they were added to.
func (s *emailService) SendAttendeeConfirmation(ctx context.Context, data *domain.AttendeeConfirmationEmailData) error {
	if data == nil {
		return errors.New("attendee confirmation data is nil")
	}
	return s.send(ctx, "attendee_confirmation", data.Email, data)
}

func (s *emailService) send(ctx context.Context, template, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	s.logger.DebugContext(ctx, "email sent", "template", template, "to", to)
	return nil
}
