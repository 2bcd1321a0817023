package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	maxAppendAttempts = 3
	retryBackoff      = 50 * time.Millisecond
)

// eventRepository is the SQL implementation of [EventRepository] backed by
// the note_events table.
type eventRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEventRepository constructs an [EventRepository] on top of db.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

// AppendEvent implements [EventRepository]. Failures the dialect classifies
// as retryable are retried up to maxAppendAttempts times with a linear
// backoff.
func (r *eventRepository) AppendEvent(ctx context.Context, event models.Event) error {
	log := logger.FromContext(ctx)

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildAppendEventQuery(r.db.builder(), event)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.AppendEvent").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		if attempt == maxAppendAttempts || r.db.classify(err) != Retryable {
			log.Err(err).Str("func", "*eventRepository.AppendEvent").Int("attempt", attempt).Msg("error inserting event")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying event insert")
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrExecutingStatement, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
}

// ListEvents implements [EventRepository].
func (r *eventRepository) ListEvents(ctx context.Context, username string, limit uint64) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEventsQuery(r.db.builder(), username, limit)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.ListEvents").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.ListEvents").Msg("error selecting events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0, min(limit, 64))
	for rows.Next() {
		var (
			event  models.Event
			action string
		)
		if err = rows.Scan(&event.EventID, &event.Username, &action, &event.Details, &event.CreatedAt); err != nil {
			log.Err(err).Str("func", "*eventRepository.ListEvents").Msg("error scanning event")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		event.Action = models.EventAction(action)
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

// DeleteEventsBefore implements [EventRepository].
func (r *eventRepository) DeleteEventsBefore(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEventsBeforeQuery(r.db.builder(), before)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.DeleteEventsBefore").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.DeleteEventsBefore").Msg("error deleting events")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

// nopEventRepository is used when no journal database is configured.
type nopEventRepository struct{}

// NewNopEventRepository returns an [EventRepository] that stores nothing.
func NewNopEventRepository() EventRepository {
	return nopEventRepository{}
}

func (nopEventRepository) AppendEvent(context.Context, models.Event) error { return nil }

func (nopEventRepository) ListEvents(context.Context, string, uint64) ([]models.Event, error) {
	return []models.Event{}, nil
}

func (nopEventRepository) DeleteEventsBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}
