package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration and
// session handling. Errors returned by the server are translated back into
// the sentinels of the service, store and record packages.
type ClientAuthService interface {
	// Register creates an account and returns the issued token. The adapter
	// is switched to the new session.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user and returns the issued token. The adapter
	// is switched to the new session.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// UseToken switches the adapter to a previously issued token without
	// contacting the server.
	UseToken(token models.Token)

	// Logout forgets the current token.
	Logout()

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientNotesService defines the client-side contract for note operations of
// the logged-in user. All calls return ErrNotLoggedIn without a token.
type ClientNotesService interface {
	ListNotes(ctx context.Context) ([]models.NoteSummary, error)
	AddNote(ctx context.Context, note models.NoteRequest) error
	GetNote(ctx context.Context, noteID int) (models.Note, error)
	DeleteNote(ctx context.Context, noteID int) error
	ShareNote(ctx context.Context, noteID int, recipient string) error

	ListSharedNotes(ctx context.Context) ([]models.NoteSummary, error)
	GetSharedNote(ctx context.Context, noteID int) (models.Note, error)
	DeleteSharedNote(ctx context.Context, noteID int) error

	// AddSecretNote replaces the secret note. The raw key is sent hex
	// encoded.
	AddSecretNote(ctx context.Context, note string, key []byte) error
	ShowSecretNote(ctx context.Context) (models.SecretNote, error)

	ListEvents(ctx context.Context, limit uint64) ([]models.Event, error)
}
