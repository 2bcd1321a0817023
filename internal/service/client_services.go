package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type ClientServices struct {
	AuthService  ClientAuthService
	NotesService ClientNotesService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, logger),
		NotesService: NewClientNotesService(serverAdapter, logger),
	}
}
