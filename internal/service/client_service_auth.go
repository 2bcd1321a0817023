package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

// Register checks the credentials locally before calling the server so that
// obviously invalid input never leaves the client.
func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Token, error) {
	if err := validators.ValidateCredentials(user.Login, user.Password); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("login", user.Login).Msg("registration failed")
		return models.Token{}, wrapServerError(ErrRegisterOnServer, err)
	}

	return token, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Token, error) {
	if err := validators.ValidateCredentials(user.Login, user.Password); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("login", user.Login).Msg("login failed")
		return models.Token{}, wrapServerError(ErrLoginOnServer, err)
	}

	return token, nil
}

func (a *clientAuthService) UseToken(token models.Token) {
	a.adapter.SetToken(token.String())
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
}

func (a *clientAuthService) ServerVersion(ctx context.Context) (string, error) {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}

// wrapServerError keeps a recognised business error matchable and marks the
// failed step with op.
func wrapServerError(op, err error) error {
	mapped := mapAdapterError(err)
	switch {
	case errors.Is(mapped, ErrWrongPassword),
		errors.Is(mapped, ErrInvalidDataProvided),
		errors.Is(mapped, store.ErrRecordNotFound),
		errors.Is(mapped, store.ErrLoginAlreadyExists):
		return fmt.Errorf("%w: %w", op, mapped)
	}

	return fmt.Errorf("%w: %v", op, err)
}
