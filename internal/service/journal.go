package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// journal records user activity. A failed append is logged and never fails
// the operation that produced the event.
type journal struct {
	events store.EventRepository
}

func (j journal) record(ctx context.Context, username string, action models.EventAction, format string, args ...any) {
	if j.events == nil {
		return
	}

	event := models.Event{
		Username: username,
		Action:   action,
		Details:  fmt.Sprintf(format, args...),
	}
	if err := j.events.AppendEvent(ctx, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("username", username).
			Str("action", string(action)).
			Msg("event was not journaled")
	}
}
