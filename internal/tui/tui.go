package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// Sessions remembers tokens of users who stay cached after logout.
type Sessions interface {
	Lookup(username string) (models.Token, bool)
	Keep(username string, token models.Token)
	Forget(username string)
	Usernames() []string
}

// KeyPreparer turns the typed secret key into XOR key bytes for note.
type KeyPreparer func(input, note, username string) ([]byte, error)

// Session is the logged-in user handed from the login flow to the main loop.
type Session struct {
	Username string
	Token    models.Token
}

type TUI struct {
	services   *service.ClientServices
	sessions   Sessions
	prepareKey KeyPreparer
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(services *service.ClientServices, sessions Sessions, prepareKey KeyPreparer, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:   services,
		sessions:   sessions,
		prepareKey: prepareKey,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

// LoginFlow shows the start menu until the user logs in or exits.
func (t *TUI) LoginFlow(ctx context.Context) (Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewStartMenu(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService, t.sessions),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return Session{}, ErrUserQuit
	}

	t.logger.Info().Str("username", result.session.Username).Msg("user logged in")
	return result.session, nil
}

// MainLoop runs the note menu of session. It reports whether the user logged
// out, as opposed to exiting the program.
func (t *TUI) MainLoop(ctx context.Context, session Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.sessions, t.prepareKey, session)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	if result.logout {
		t.logger.Info().Str("username", session.Username).Bool("cached", result.keptInCache).Msg("user logged out")
	}
	return result.logout, nil
}
