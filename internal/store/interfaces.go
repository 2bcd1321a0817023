package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/record"
	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordStorage persists one [record.Record] per username.
//
// Implementations do not serialize access: two concurrent Save calls for the
// same username race and the last writer wins.
type RecordStorage interface {
	// Exists reports whether the record for username can be opened for
	// reading and writing.
	Exists(ctx context.Context, username string) bool

	// Create writes the minimal record for a new account, replacing any
	// existing record for username.
	Create(ctx context.Context, username, password string) error

	// CheckPassword compares candidate with the stored password. It returns
	// [ErrRecordNotFound] if the record is absent.
	CheckPassword(ctx context.Context, username, candidate string) (bool, error)

	// Load reads the full record for username.
	Load(ctx context.Context, username string) (*record.Record, error)

	// Save rewrites the record file of rec.Username in full.
	Save(ctx context.Context, rec *record.Record) error
}

// EventRepository is the activity journal.
type EventRepository interface {
	// AppendEvent stores a single event. CreatedAt is set by the repository
	// when zero.
	AppendEvent(ctx context.Context, event models.Event) error

	// ListEvents returns up to limit most recent events of username, newest
	// first.
	ListEvents(ctx context.Context, username string, limit uint64) ([]models.Event, error)

	// DeleteEventsBefore removes events older than before and reports how
	// many rows were deleted.
	DeleteEventsBefore(ctx context.Context, before time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
