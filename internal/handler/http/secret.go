package http

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) addSecretNote(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	var req models.SecretNoteRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, service.ErrInvalidDataProvided, "invalid JSON was passed")
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid secret key")
		return
	}
	key, err := hex.DecodeString(req.Key)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: key is not hex: %w", service.ErrInvalidDataProvided, err), "invalid secret key")
		return
	}

	if err = h.services.NotesService.AddSecretNote(r.Context(), username, req.Note, key); err != nil {
		writeError(w, r, err, "storing secret note failed")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) showSecretNote(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NotesService.ShowSecretNote(r.Context(), username)
	if err != nil {
		writeError(w, r, err, "showing secret note failed")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}
