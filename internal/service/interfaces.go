package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NotesService runs the record operations of one user. Every call loads the
// record, applies a single operation and writes it back.
type NotesService interface {
	ListNotes(ctx context.Context, username string) ([]models.NoteSummary, error)
	AddNote(ctx context.Context, username string, note models.NoteRequest) error
	GetNote(ctx context.Context, username string, noteID int) (models.Note, error)
	DeleteNote(ctx context.Context, username string, noteID int) error

	// ShareNote copies a note of owner into the shared notes of recipient.
	ShareNote(ctx context.Context, owner string, noteID int, recipient string) error

	ListSharedNotes(ctx context.Context, username string) ([]models.NoteSummary, error)
	GetSharedNote(ctx context.Context, username string, noteID int) (models.Note, error)
	DeleteSharedNote(ctx context.Context, username string, noteID int) error

	// AddSecretNote replaces the secret note. The key is repeated to cover
	// the note before encryption.
	AddSecretNote(ctx context.Context, username string, note string, key []byte) error
	ShowSecretNote(ctx context.Context, username string) (models.SecretNote, error)
}

type EventService interface {
	ListEvents(ctx context.Context, username string, limit uint64) ([]models.Event, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
