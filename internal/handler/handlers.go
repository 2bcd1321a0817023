// Package handler assembles the inbound transports of the note keeper
// server. Only the HTTP API exists today.
package handler

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler/http"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// Handlers groups the transport handlers started by the server.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler over services. The server section of
// the config must name a listen address.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if cfg.HTTPAddress == "" {
		return nil, ErrNoHTTPAddress
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating HTTP handler")
	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
