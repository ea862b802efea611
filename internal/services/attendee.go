package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventmanager/internal/domain"
)

type attendeeService struct {
	attendeeRepo   domain.AttendeeRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAttendeeService creates an AttendeeService. eventRepo is only read to fill
// confirmation emails; emailService may be nil to skip them.
func NewAttendeeService(
	attendeeRepo domain.AttendeeRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AttendeeService {
	return &attendeeService{
		attendeeRepo:   attendeeRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *attendeeService) ListAttendees(ctx context.Context, eventID *int64) ([]*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var (
		attendees []*domain.Attendee
		err       error
	)
	if eventID != nil {
		attendees, err = s.attendeeRepo.ListByEventID(ctx, *eventID)
	} else {
		attendees, err = s.attendeeRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	if attendees == nil {
		attendees = []*domain.Attendee{}
	}
	return attendees, nil
}

func (s *attendeeService) GetAttendee(ctx context.Context, id int64) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.attendeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	return a, nil
}

func (s *attendeeService) CreateAttendee(ctx context.Context, name, email string, eventID int64) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name, err := requireText("name", name)
	if err != nil {
		return nil, err
	}
	email, err = validEmail(email)
	if err != nil {
		return nil, err
	}
	if err := validEventID(eventID); err != nil {
		return nil, err
	}

	a := domain.NewAttendee(name, email, eventID)
	if err := s.attendeeRepo.Create(ctx, a); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return nil, err
		}
		return nil, fmt.Errorf("create attendee: %w", err)
	}
	s.logger.DebugContext(ctx, "attendee created", "attendee_id", a.ID, "event_id", a.EventID, "actor", domain.Actor(ctx))

	s.sendConfirmation(ctx, a)
	return a, nil
}

// sendConfirmation emails the new attendee. Failures are logged and never returned.
func (s *attendeeService) sendConfirmation(ctx context.Context, a *domain.Attendee) {
	if s.emailService == nil {
		return
	}
	event, err := s.eventRepo.GetByID(ctx, a.EventID)
	if err != nil {
		s.logger.WarnContext(ctx, "attendee confirmation skipped", "attendee_id", a.ID, "err", err)
		return
	}
	data := &domain.AttendeeConfirmationEmailData{
		Email:         a.Email,
		Name:          a.Name,
		EventName:     event.Name,
		EventLocation: event.Location,
		EventDate:     event.Date.String(),
	}
	if err := s.emailService.SendAttendeeConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "attendee confirmation failed", "attendee_id", a.ID, "err", err)
	}
}

func (s *attendeeService) UpdateAttendee(ctx context.Context, id int64, patch domain.AttendeePatch) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if patch.Name != nil {
		name, err := requireText("name", *patch.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if patch.Email != nil {
		email, err := validEmail(*patch.Email)
		if err != nil {
			return nil, err
		}
		patch.Email = &email
	}
	if patch.EventID != nil {
		if err := validEventID(*patch.EventID); err != nil {
			return nil, err
		}
	}

	a, err := s.attendeeRepo.Update(ctx, id, patch)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		case errors.As(err, &vErr):
			return nil, err
		}
		return nil, fmt.Errorf("update attendee: %w", err)
	}
	s.logger.DebugContext(ctx, "attendee updated", "attendee_id", id, "actor", domain.Actor(ctx))
	return a, nil
}

func (s *attendeeService) DeleteAttendee(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.attendeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete attendee: %w", err)
	}
	s.logger.DebugContext(ctx, "attendee deleted", "attendee_id", id, "actor", domain.Actor(ctx))
	return nil
}
