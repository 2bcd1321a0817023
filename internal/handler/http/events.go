package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// listEvents returns the newest journal events of the caller. The optional
// "limit" query parameter caps the number of events.
func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: limit: %w", service.ErrInvalidDataProvided, err), "invalid limit")
			return
		}
		limit = parsed
	}

	events, err := h.services.EventService.ListEvents(r.Context(), username, limit)
	if err != nil {
		writeError(w, r, err, "listing events failed")
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}
