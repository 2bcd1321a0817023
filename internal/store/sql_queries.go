package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

const eventsTable = "note_events"

var eventColumns = []string{"event_id", "username", "action", "details", "created_at"}

func buildAppendEventQuery(b sq.StatementBuilderType, event models.Event) (string, []any, error) {
	return b.Insert(eventsTable).
		Columns("username", "action", "details", "created_at").
		Values(event.Username, string(event.Action), event.Details, event.CreatedAt).
		ToSql()
}

func buildListEventsQuery(b sq.StatementBuilderType, username string, limit uint64) (string, []any, error) {
	return b.Select(eventColumns...).
		From(eventsTable).
		Where(sq.Eq{"username": username}).
		OrderBy("created_at DESC", "event_id DESC").
		Limit(limit).
		ToSql()
}

func buildDeleteEventsBeforeQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Delete(eventsTable).
		Where(sq.Lt{"created_at": before}).
		ToSql()
}
