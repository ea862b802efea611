package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventmanager/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, name, location, date string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name, err := requireText("name", name)
	if err != nil {
		return nil, err
	}
	parsed, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	event := domain.NewEvent(name, location, parsed)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.logger.DebugContext(ctx, "event created", "event_id", event.ID, "actor", domain.Actor(ctx))
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id int64, update domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var patch domain.EventPatch
	if update.Name != nil {
		name, err := requireText("name", *update.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if update.Location != nil {
		location := *update.Location
		patch.Location = &location
	}
	if update.Date != nil {
		parsed, err := domain.ParseDate(*update.Date)
		if err != nil {
			return nil, err
		}
		patch.Date = &parsed
	}

	event, err := s.eventRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.logger.DebugContext(ctx, "event updated", "event_id", id, "actor", domain.Actor(ctx))
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	s.logger.DebugContext(ctx, "event deleted", "event_id", id, "actor", domain.Actor(ctx))
	return nil
}
