// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const loginHotKeys = "esc: back │ tab: next field │ enter: submit"

// LoginModel is the Bubble Tea model for the login screen. A user found in
// the session cache is logged in with the cached token and the password
// field is ignored. On success a [LoginResult] message is produced and
// handled by [RootModel] to finish the authentication flow.
type LoginModel struct {
	ctx      context.Context
	auth     service.ClientAuthService
	sessions Sessions

	form formModel
}

// NewLoginModel creates a [LoginModel] with username and masked password
// inputs.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, sessions Sessions) *LoginModel {
	return &LoginModel{
		ctx:      ctx,
		auth:     auth,
		sessions: sessions,
		form: newForm("LOGIN",
			newField("Username", "username", 31),
			newMaskedField("Password", "password", 31),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]: clears submitting state and shows the error, if any.
//   - esc: navigates back to the menu.
//   - enter: validates inputs and dispatches the async login command.
//
// All other messages are forwarded to the form.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.form.submitting = false
		if result.Err != nil {
			m.form.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	note := ""
	if cached := m.sessions.Usernames(); len(cached) > 0 {
		note = "Cached users (no password needed): " + strings.Join(cached, ", ")
	}

	return m.form.View(note, loginHotKeys)
}

func (m *LoginModel) submit() tea.Cmd {
	if m.form.submitting {
		return nil
	}

	login := strings.TrimSpace(m.form.value(0))
	if login == "" {
		m.form.errMsg = "username is required"
		return nil
	}

	m.form.errMsg = ""
	if token, ok := m.sessions.Lookup(login); ok {
		m.form.submitting = true
		return m.cmdResume(login, token)
	}

	pass := m.form.value(1)
	if pass == "" {
		m.form.errMsg = "password is required"
		return nil
	}

	m.form.submitting = true
	return m.cmdLogin(login, pass)
}

func (m *LoginModel) cmdLogin(login, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		token, err := auth.Login(ctx, models.User{
			Login:    login,
			Password: pass,
		})

		return LoginResult{
			Username: login,
			Token:    token,
			Err:      err,
		}
	}
}

func (m *LoginModel) cmdResume(login string, token models.Token) tea.Cmd {
	auth := m.auth

	return func() tea.Msg {
		auth.UseToken(token)
		return LoginResult{Username: login, Token: token}
	}
}
