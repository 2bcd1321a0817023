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

// RegisterModel creates an account. Registration does not log the user in;
// the start menu is shown again with a notice.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form formModel
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newForm("REGISTER",
			newField("Username", "5-31 letters or digits", 31),
			newMaskedField("Password", "5-31 letters or digits", 31),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResult); ok {
		if result.err != nil {
			m.form.submitting = false
			m.form.errMsg = humanizeError(result.err)
			return m, nil
		}

		m.form.reset()
		notice := RegisterSuccessNotice{Username: result.username}
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: notice} }
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

func (m *RegisterModel) View() string {
	return m.form.View("", "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) submit() tea.Cmd {
	if m.form.submitting {
		return nil
	}

	login := strings.TrimSpace(m.form.value(0))
	pass := m.form.value(1)
	if login == "" || pass == "" {
		m.form.errMsg = "username and password are required"
		return nil
	}

	m.form.errMsg = ""
	m.form.submitting = true

	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		_, err := auth.Register(ctx, models.User{Login: login, Password: pass})
		if err == nil {
			// registering switches the adapter to the new token
			auth.Logout()
		}
		return registerResult{username: login, err: err}
	}
}
