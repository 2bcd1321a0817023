package service

import (
	"context"
	"encoding/hex"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientNotesService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientNotesService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNotesService {
	return &clientNotesService{adapter: serverAdapter, logger: logger}
}

func (s *clientNotesService) ListNotes(ctx context.Context) ([]models.NoteSummary, error) {
	if err := s.checkSession(); err != nil {
		return nil, err
	}

	notes, err := s.adapter.ListNotes(ctx)
	return notes, s.mapError(err, "list notes")
}

func (s *clientNotesService) AddNote(ctx context.Context, note models.NoteRequest) error {
	if err := s.checkSession(); err != nil {
		return err
	}

	return s.mapError(s.adapter.AddNote(ctx, note), "add note")
}

func (s *clientNotesService) GetNote(ctx context.Context, noteID int) (models.Note, error) {
	if err := s.checkSession(); err != nil {
		return models.Note{}, err
	}

	note, err := s.adapter.GetNote(ctx, noteID)
	return note, s.mapError(err, "get note")
}

func (s *clientNotesService) DeleteNote(ctx context.Context, noteID int) error {
	if err := s.checkSession(); err != nil {
		return err
	}

	return s.mapError(s.adapter.DeleteNote(ctx, noteID), "delete note")
}

func (s *clientNotesService) ShareNote(ctx context.Context, noteID int, recipient string) error {
	if err := s.checkSession(); err != nil {
		return err
	}

	err := s.adapter.ShareNote(ctx, noteID, models.ShareRequest{Recipient: recipient})
	return s.mapError(err, "share note")
}

func (s *clientNotesService) ListSharedNotes(ctx context.Context) ([]models.NoteSummary, error) {
	if err := s.checkSession(); err != nil {
		return nil, err
	}

	notes, err := s.adapter.ListSharedNotes(ctx)
	return notes, s.mapError(err, "list shared notes")
}

func (s *clientNotesService) GetSharedNote(ctx context.Context, noteID int) (models.Note, error) {
	if err := s.checkSession(); err != nil {
		return models.Note{}, err
	}

	note, err := s.adapter.GetSharedNote(ctx, noteID)
	return note, s.mapError(err, "get shared note")
}

func (s *clientNotesService) DeleteSharedNote(ctx context.Context, noteID int) error {
	if err := s.checkSession(); err != nil {
		return err
	}

	return s.mapError(s.adapter.DeleteSharedNote(ctx, noteID), "delete shared note")
}

func (s *clientNotesService) AddSecretNote(ctx context.Context, note string, key []byte) error {
	if err := s.checkSession(); err != nil {
		return err
	}
	if len(key) == 0 {
		return ErrInvalidDataProvided
	}

	err := s.adapter.PutSecretNote(ctx, models.SecretNoteRequest{
		Note: note,
		Key:  hex.EncodeToString(key),
	})
	return s.mapError(err, "add secret note")
}

func (s *clientNotesService) ShowSecretNote(ctx context.Context) (models.SecretNote, error) {
	if err := s.checkSession(); err != nil {
		return models.SecretNote{}, err
	}

	secret, err := s.adapter.GetSecretNote(ctx)
	return secret, s.mapError(err, "show secret note")
}

func (s *clientNotesService) ListEvents(ctx context.Context, limit uint64) ([]models.Event, error) {
	if err := s.checkSession(); err != nil {
		return nil, err
	}

	events, err := s.adapter.ListEvents(ctx, limit)
	return events, s.mapError(err, "list events")
}

func (s *clientNotesService) checkSession() error {
	if s.adapter.Token() == "" {
		return ErrNotLoggedIn
	}
	return nil
}

func (s *clientNotesService) mapError(err error, op string) error {
	if err == nil {
		return nil
	}

	s.logger.Err(err).Str("op", op).Msg("server call failed")
	return mapAdapterError(err)
}
