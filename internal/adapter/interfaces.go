// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// note server.
//
// [ServerAdapter] decouples client services from the protocol. The package
// ships an HTTP/REST implementation built on resty ([NewHTTPServerAdapter]).
// Non-2xx responses are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrInsufficientStorage] for 507).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the note server. Every method
// except Register, Login and Version requires a token set with SetToken.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account. On success the issued token is stored via
	// SetToken and returned.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user. On success the issued token is stored
	// via SetToken and returned.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	ListNotes(ctx context.Context) ([]models.NoteSummary, error)
	AddNote(ctx context.Context, note models.NoteRequest) error
	GetNote(ctx context.Context, noteID int) (models.Note, error)
	DeleteNote(ctx context.Context, noteID int) error
	ShareNote(ctx context.Context, noteID int, req models.ShareRequest) error

	ListSharedNotes(ctx context.Context) ([]models.NoteSummary, error)
	GetSharedNote(ctx context.Context, noteID int) (models.Note, error)
	DeleteSharedNote(ctx context.Context, noteID int) error

	// PutSecretNote replaces the secret note. The key in req is hex encoded.
	PutSecretNote(ctx context.Context, req models.SecretNoteRequest) error
	GetSecretNote(ctx context.Context) (models.SecretNote, error)

	// ListEvents returns the most recent journal entries of the user.
	ListEvents(ctx context.Context, limit uint64) ([]models.Event, error)
}
