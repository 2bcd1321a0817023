package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NotesServiceWrapper defines middleware composition for NotesService.
// Implementations wrap an existing NotesService to add behavior such as
// validation.
type NotesServiceWrapper interface {
	Wrap(NotesService) NotesService
}

// NotesValidationService checks usernames before they reach the record
// storage, where they become file names.
type NotesValidationService struct {
	inner     NotesService
	validator validators.Validator
}

func NewNotesValidationService() NotesServiceWrapper {
	return &NotesValidationService{
		validator: validators.NewNotesValidator(),
	}
}

func (v *NotesValidationService) Wrap(inner NotesService) NotesService {
	v.inner = inner
	return v
}

func (v *NotesValidationService) ListNotes(ctx context.Context, username string) ([]models.NoteSummary, error) {
	if err := v.validateUsername(ctx, username); err != nil {
		return nil, err
	}

	return v.inner.ListNotes(ctx, username)
}

func (v *NotesValidationService) AddNote(ctx context.Context, username string, note models.NoteRequest) error {
	if err := v.validateUsername(ctx, username); err != nil {
		return err
	}

	if err := checkFieldSize("note", len(note.Note)); err != nil {
		return err
	}
	if err := checkFieldSize("info", len(note.Info)); err != nil {
		return err
	}

	return v.inner.AddNote(ctx, username, note)
}

func (v *NotesValidationService) GetNote(ctx context.Context, username string, noteID int) (models.Note, error) {
	if err := v.validateUsername(ctx, username); err != nil {
		return models.Note{}, err
	}

	return v.inner.GetNote(ctx, username, noteID)
}

func (v *NotesValidationService) DeleteNote(ctx context.Context, username string, noteID int) error {
	if err := v.validateUsername(ctx, username); err != nil {
		return err
	}

	return v.inner.DeleteNote(ctx, username, noteID)
}

func (v *NotesValidationService) ShareNote(ctx context.Context, owner string, noteID int, recipient string) error {
	if err := v.validateUsername(ctx, owner); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, models.ShareRequest{Recipient: recipient}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ShareNote(ctx, owner, noteID, recipient)
}

func (v *NotesValidationService) ListSharedNotes(ctx context.Context, username string) ([]models.NoteSummary, error) {
	if err := v.validateUsername(ctx, username); err != nil {
		return nil, err
	}

	return v.inner.ListSharedNotes(ctx, username)
}

func (v *NotesValidationService) GetSharedNote(ctx context.Context, username string, noteID int) (models.Note, error) {
	if err := v.validateUsername(ctx, username); err != nil {
		return models.Note{}, err
	}

	return v.inner.GetSharedNote(ctx, username, noteID)
}

func (v *NotesValidationService) DeleteSharedNote(ctx context.Context, username string, noteID int) error {
	if err := v.validateUsername(ctx, username); err != nil {
		return err
	}

	return v.inner.DeleteSharedNote(ctx, username, noteID)
}

func (v *NotesValidationService) AddSecretNote(ctx context.Context, username string, note string, key []byte) error {
	if err := v.validateUsername(ctx, username); err != nil {
		return err
	}
	if len(key) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyKey)
	}
	if err := checkFieldSize("secret note", len(note)); err != nil {
		return err
	}

	return v.inner.AddSecretNote(ctx, username, note, key)
}

func (v *NotesValidationService) ShowSecretNote(ctx context.Context, username string) (models.SecretNote, error) {
	if err := v.validateUsername(ctx, username); err != nil {
		return models.SecretNote{}, err
	}

	return v.inner.ShowSecretNote(ctx, username)
}

func (v *NotesValidationService) validateUsername(ctx context.Context, username string) error {
	if err := v.validator.Validate(ctx, models.User{Login: username}, validators.FieldLogin); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}

// checkFieldSize rejects values the record file could not hold.
func checkFieldSize(field string, size int) error {
	if size > store.MaxFieldSize {
		return fmt.Errorf("%w: %s is %d bytes, at most %d allowed", ErrInvalidDataProvided, field, size, store.MaxFieldSize)
	}

	return nil
}
