package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// DefaultEventsLimit is used when ListEvents is called with a zero limit.
const DefaultEventsLimit = 50

type eventService struct {
	events store.EventRepository
	logger *logger.Logger
}

func NewEventService(events store.EventRepository, logger *logger.Logger) EventService {
	return &eventService{events: events, logger: logger}
}

// ListEvents returns the most recent journal entries of username, newest
// first.
func (s *eventService) ListEvents(ctx context.Context, username string, limit uint64) ([]models.Event, error) {
	if username == "" {
		return nil, ErrInvalidDataProvided
	}
	if limit == 0 {
		limit = DefaultEventsLimit
	}

	events, err := s.events.ListEvents(ctx, username, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error listing events")
		return nil, fmt.Errorf("error listing events: %w", err)
	}

	return events, nil
}
