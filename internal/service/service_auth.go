package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It creates record files for new accounts, checks credentials against the
// stored password and issues JWT tokens whose subject is the username.
type authService struct {
	records store.RecordStorage
	journal journal
	locker  *userLocker

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over the given record storage
// and journal, populated with token parameters from cfg.
func NewAuthService(records store.RecordStorage, events store.EventRepository, cfg config.App, logger *logger.Logger) AuthService {
	return newAuthService(records, events, newUserLocker(), cfg, logger)
}

func newAuthService(records store.RecordStorage, events store.EventRepository, locker *userLocker, cfg config.App, logger *logger.Logger) *authService {
	return &authService{
		records:       records,
		journal:       journal{events: events},
		locker:        locker,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// RegisterUser creates a new account.
//
// Returns the registered user or:
//   - ErrInvalidDataProvided if the login or the password is not a valid
//     identifier.
//   - store.ErrLoginAlreadyExists if a record for the login is present.
//   - A wrapped storage error if the record file cannot be written.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateCredentials(user.Login, user.Password); err != nil {
		log.Error().Err(err).Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	unlock := a.locker.Lock(user.Login)
	defer unlock()

	if a.records.Exists(ctx, user.Login) {
		log.Error().Str("login", user.Login).Msg("login already exists")
		return models.User{}, store.ErrLoginAlreadyExists
	}

	if err := a.records.Create(ctx, user.Login, user.Password); err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.journal.record(ctx, user.Login, models.EventRegistered, "account created")

	return models.User{Login: user.Login}, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user or:
//   - ErrInvalidDataProvided if the login or the password is not a valid
//     identifier.
//   - store.ErrRecordNotFound if the user does not exist.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateCredentials(user.Login, user.Password); err != nil {
		log.Error().Err(err).Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ok, err := a.records.CheckPassword(ctx, user.Login, user.Password)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password check failed")
		return models.User{}, fmt.Errorf("password check failed: %w", err)
	}
	if !ok {
		log.Error().Str("login", user.Login).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	a.journal.record(ctx, user.Login, models.EventLoggedIn, "logged in")

	return models.User{Login: user.Login}, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Login, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
