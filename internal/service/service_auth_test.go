package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-note-keeper",
		TokenDuration: time.Hour,
		Version:       "1.0.0",
	}
}

func newTestAuthService(t *testing.T) (*authService, *mock.MockRecordStorage, *mock.MockEventRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	records := mock.NewMockRecordStorage(ctrl)
	events := mock.NewMockEventRepository(ctrl)

	svc := newAuthService(records, events, newUserLocker(), testAppConfig(), logger.Nop())
	return svc, records, events
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	svc, records, events := newTestAuthService(t)
	ctx := context.Background()

	gomock.InOrder(
		records.EXPECT().Exists(ctx, "alice12").Return(false),
		records.EXPECT().Create(ctx, "alice12", "hunter22").Return(nil),
		events.EXPECT().AppendEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e models.Event) error {
				assert.Equal(t, "alice12", e.Username)
				assert.Equal(t, models.EventRegistered, e.Action)
				return nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, models.User{Login: "alice12", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "alice12", user.Login)
	assert.Empty(t, user.Password, "password must not leave the service")
}

func TestRegisterUser_InvalidCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	tests := []struct {
		name string
		user models.User
	}{
		{name: "short login", user: models.User{Login: "ab", Password: "hunter22"}},
		{name: "login with path", user: models.User{Login: "../etc", Password: "hunter22"}},
		{name: "empty password", user: models.User{Login: "alice12"}},
		{name: "password with space", user: models.User{Login: "alice12", Password: "hunter 22"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_AlreadyExists(t *testing.T) {
	svc, records, _ := newTestAuthService(t)
	ctx := context.Background()

	records.EXPECT().Exists(ctx, "alice12").Return(true)

	_, err := svc.RegisterUser(ctx, models.User{Login: "alice12", Password: "hunter22"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestRegisterUser_CreateFails(t *testing.T) {
	svc, records, _ := newTestAuthService(t)
	ctx := context.Background()

	records.EXPECT().Exists(ctx, "alice12").Return(false)
	records.EXPECT().Create(ctx, "alice12", "hunter22").Return(store.ErrIOFailure)

	_, err := svc.RegisterUser(ctx, models.User{Login: "alice12", Password: "hunter22"})
	assert.ErrorIs(t, err, store.ErrIOFailure)
}

func TestRegisterUser_JournalFailureIsIgnored(t *testing.T) {
	svc, records, events := newTestAuthService(t)
	ctx := context.Background()

	records.EXPECT().Exists(ctx, "alice12").Return(false)
	records.EXPECT().Create(ctx, "alice12", "hunter22").Return(nil)
	events.EXPECT().AppendEvent(ctx, gomock.Any()).Return(errors.New("db is down"))

	_, err := svc.RegisterUser(ctx, models.User{Login: "alice12", Password: "hunter22"})
	assert.NoError(t, err)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	svc, records, events := newTestAuthService(t)
	ctx := context.Background()

	records.EXPECT().CheckPassword(ctx, "alice12", "hunter22").Return(true, nil)
	events.EXPECT().AppendEvent(ctx, gomock.Any()).Return(nil)

	user, err := svc.Login(ctx, models.User{Login: "alice12", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "alice12", user.Login)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, records, _ := newTestAuthService(t)
	ctx := context.Background()

	records.EXPECT().CheckPassword(ctx, "alice12", "hunter23").Return(false, nil)

	_, err := svc.Login(ctx, models.User{Login: "alice12", Password: "hunter23"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, records, _ := newTestAuthService(t)
	ctx := context.Background()

	records.EXPECT().CheckPassword(ctx, "nobody1", "hunter22").Return(false, store.ErrRecordNotFound)

	_, err := svc.Login(ctx, models.User{Login: "nobody1", Password: "hunter22"})
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.User{Login: "alice12", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestCreateAndParseToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Login: "alice12"})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "alice12", parsed.Username)
}

func TestCreateToken_EmptyLogin(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	other := newAuthService(nil, nil, newUserLocker(), config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   "go-note-keeper",
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(ctx, models.User{Login: "alice12"})
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-jwt", foreign.String()} {
		_, err = svc.ParseToken(ctx, raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, "token %q", raw)
	}
}
