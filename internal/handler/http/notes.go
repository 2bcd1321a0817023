package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NotesService.ListNotes(r.Context(), username)
	if err != nil {
		writeError(w, r, err, "listing notes failed")
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	var note models.NoteRequest
	if err := utils.ReadJSON(r, &note); err != nil {
		writeError(w, r, service.ErrInvalidDataProvided, "invalid JSON was passed")
		return
	}

	if err := h.services.NotesService.AddNote(r.Context(), username, note); err != nil {
		writeError(w, r, err, "adding note failed")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	note, err := h.services.NotesService.GetNote(r.Context(), username, noteID)
	if err != nil {
		writeError(w, r, err, "getting note failed")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	if err := h.services.NotesService.DeleteNote(r.Context(), username, noteID); err != nil {
		writeError(w, r, err, "deleting note failed")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) shareNote(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	var req models.ShareRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, service.ErrInvalidDataProvided, "invalid JSON was passed")
		return
	}

	if err := h.services.NotesService.ShareNote(r.Context(), username, noteID, req.Recipient); err != nil {
		writeError(w, r, err, "sharing note failed")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listSharedNotes(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NotesService.ListSharedNotes(r.Context(), username)
	if err != nil {
		writeError(w, r, err, "listing shared notes failed")
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getSharedNote(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	note, err := h.services.NotesService.GetSharedNote(r.Context(), username, noteID)
	if err != nil {
		writeError(w, r, err, "getting shared note failed")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteSharedNote(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	if err := h.services.NotesService.DeleteSharedNote(r.Context(), username, noteID); err != nil {
		writeError(w, r, err, "deleting shared note failed")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// usernameFromRequest writes a 401 and returns false when the auth
// middleware did not put a username into the request context.
func usernameFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUsernameInContext, "no username in context")
		return "", false
	}

	return username, true
}

// parseNoteID reads the {id} path segment. Negative ids are passed through,
// delete operations normalize them.
func parseNoteID(w http.ResponseWriter, r *http.Request) (int, bool) {
	noteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, ErrInvalidNoteID, "invalid note id in path")
		return 0, false
	}

	return noteID, true
}
