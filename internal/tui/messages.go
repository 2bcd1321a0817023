package tui

import (
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult ends the login flow when Err is nil.
type LoginResult struct {
	Username string
	Token    models.Token
	Err      error
}

// RegisterSuccessNotice is shown by the start menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

type registerResult struct {
	username string
	err      error
}

// quitMsg is emitted by the "exit" menu item.
type quitMsg struct{}

// actionDoneMsg reports a mutation. On success status is shown on the menu.
type actionDoneMsg struct {
	status string
	err    error
}

// resultMsg carries a rendered read result. secret is set only for the
// secret note so it can be copied.
type resultMsg struct {
	title  string
	body   string
	secret string
	err    error
}
