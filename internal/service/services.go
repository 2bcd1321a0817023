package service

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	NotesService   NotesService
	EventService   EventService
	AppInfoService AppInfoService
}

// NewServices wires the server services. The auth and notes services share
// one per-username lock table.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	locker := newUserLocker()
	notes := NewNotesValidationService().Wrap(
		newNotesService(storages.RecordStorage, storages.EventRepository, locker, logger),
	)

	return &Services{
		AuthService:    newAuthService(storages.RecordStorage, storages.EventRepository, locker, cfg.App, logger),
		NotesService:   notes,
		EventService:   NewEventService(storages.EventRepository, logger),
		AppInfoService: appInfo,
	}, nil
}
