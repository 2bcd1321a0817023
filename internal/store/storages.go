package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages bundles every persistence backend used by the server.
type Storages struct {
	RecordStorage   RecordStorage
	EventRepository EventRepository

	db *DB
}

// NewStorages opens the record directory and, when a DSN is configured,
// connects and migrates the journal database. Without a DSN the journal is
// a no-op.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	records, err := NewRecordFileStorage(cfg.Files.RecordsDir, log)
	if err != nil {
		return nil, fmt.Errorf("error creating record storage: %w", err)
	}

	if cfg.DB.DSN == "" {
		log.Info().Msg("journal database is not configured, events are discarded")
		return &Storages{
			RecordStorage:   records,
			EventRepository: NewNopEventRepository(),
		}, nil
	}

	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting journal database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating journal database: %w", err)
	}

	return &Storages{
		RecordStorage:   records,
		EventRepository: NewEventRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the journal connection pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
