package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

type App struct {
	ui     UI
	logger *logger.Logger
}

// NewApp wires the HTTP adapter, the client services, the session cache and
// the terminal UI.
func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(serverAdapter, logger)
	sessions := NewSessionCache(DefaultSessionCacheSize)
	keychain := crypto.NewKeyChainService()

	prepareKey := func(input, note, username string) ([]byte, error) {
		return PrepareKey(keychain, input, note, username)
	}

	return newApp(tui.New(services, sessions, prepareKey, buildInfo, logger), logger), nil
}

func newApp(ui UI, logger *logger.Logger) *App {
	return &App{ui: ui, logger: logger}
}

// Run alternates between the login flow and the note menu until the user
// exits. Logging out returns to the login flow.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		session, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			a.logger.Info().Str("username", session.Username).Msg("client exited")
			return nil
		}
	}
}
