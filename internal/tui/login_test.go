package tui

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogin(t *testing.T) (*LoginModel, *mock.MockClientAuthService, *fakeSessions) {
	t.Helper()

	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	sessions := newFakeSessions()
	return NewLoginModel(t.Context(), auth, sessions), auth, sessions
}

func fill(f *formModel, values ...string) {
	for i, v := range values {
		f.fields[i].input.SetValue(v)
	}
}

func TestLogin_CachedUserSkipsPassword(t *testing.T) {
	m, auth, sessions := newTestLogin(t)
	tok := tokenForTest("alice12")
	sessions.Keep("alice12", tok)
	fill(&m.form, "alice12")

	auth.EXPECT().UseToken(tok)

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	assert.Equal(t, LoginResult{Username: "alice12", Token: tok}, cmd())
}

func TestLogin_PasswordRequiredForUncachedUser(t *testing.T) {
	m, _, _ := newTestLogin(t)
	fill(&m.form, "alice12")

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "password is required", m.form.errMsg)
}

func TestLogin_UsernameRequired(t *testing.T) {
	m, _, _ := newTestLogin(t)
	fill(&m.form, "  ", "hunter22")

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "username is required", m.form.errMsg)
}

func TestLogin_CallsServer(t *testing.T) {
	m, auth, _ := newTestLogin(t)
	tok := tokenForTest("alice12")
	fill(&m.form, " alice12 ", "hunter22")

	auth.EXPECT().
		Login(gomock.Any(), models.User{Login: "alice12", Password: "hunter22"}).
		Return(tok, nil)

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	_, again := m.Update(keyPress("enter"))
	assert.Nil(t, again, "second enter while submitting is ignored")

	assert.Equal(t, LoginResult{Username: "alice12", Token: tok}, cmd())
}

func TestLogin_ErrorIsShown(t *testing.T) {
	m, _, _ := newTestLogin(t)
	m.form.submitting = true

	m.Update(LoginResult{Username: "alice12", Err: service.ErrWrongPassword})

	assert.False(t, m.form.submitting)
	assert.Contains(t, m.View(), "Error: wrong password")
}

func TestLogin_ViewListsCachedUsers(t *testing.T) {
	m, _, sessions := newTestLogin(t)
	sessions.Keep("alice12", tokenForTest("alice12"))
	sessions.Keep("bobby1", tokenForTest("bobby1"))

	assert.Contains(t, m.View(), "Cached users (no password needed): alice12, bobby1")
}

func TestLogin_EscGoesBackAndClearsForm(t *testing.T) {
	m, _, _ := newTestLogin(t)
	fill(&m.form, "alice12", "hunter22")

	_, cmd := m.Update(keyPress("esc"))

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
	assert.Empty(t, m.form.value(0))
	assert.Empty(t, m.form.value(1))
}

func TestRegister_SuccessLogsOutAndReturnsToMenu(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	m := NewRegisterModel(t.Context(), auth)
	fill(&m.form, "alice12", "hunter22")

	gomock.InOrder(
		auth.EXPECT().
			Register(gomock.Any(), models.User{Login: "alice12", Password: "hunter22"}).
			Return(tokenForTest("alice12"), nil),
		auth.EXPECT().Logout(),
	)

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, registerResult{username: "alice12"}, msg)

	_, cmd = m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Username: "alice12"}}, cmd())
	assert.Empty(t, m.form.value(0))
}

func TestRegister_ExistingUser(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	m := NewRegisterModel(t.Context(), auth)
	fill(&m.form, "alice12", "hunter22")

	auth.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: %w", service.ErrRegisterOnServer, store.ErrLoginAlreadyExists))

	_, cmd := m.Update(keyPress("enter"))
	m.Update(cmd())

	assert.False(t, m.form.submitting)
	assert.Contains(t, m.View(), "Error: user exists")
}
