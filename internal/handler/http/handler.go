// Package http is the REST transport of the note server: a chi router, its
// middleware and the route handlers that call into the service layer.
package http

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

// Handler serves the note keeper REST API. Every route handler is a method
// on it, and [Handler.Init] assembles them into a router.
type Handler struct {
	services  *service.Services
	validator validators.Validator
	logger    *logger.Logger

	// traceIDs issues ids for requests that arrive without X-Trace-ID.
	traceIDs *utils.UUIDGenerator
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services:  services,
		validator: validators.NewNotesValidator(),
		logger:    logger,
		traceIDs:  utils.NewUUIDGenerator(),
	}

	logger.Debug().Msg("http handler created")
	return h
}
