package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/record"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first sentinel matched by
// errors.Is decides the response.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidNoteID, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrInvalidAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrNoUsernameInContext, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},

	{store.ErrRecordNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{store.ErrLoginAlreadyExists, errorResponse{http.StatusConflict, app.MsgLoginAlreadyExists}},

	{record.ErrIndexOutOfRange, errorResponse{http.StatusNotFound, app.MsgNoteNotFound}},
	{record.ErrEmptyCollection, errorResponse{http.StatusNotFound, app.MsgNoNotes}},
	{record.ErrDecryptUnavailable, errorResponse{http.StatusNotFound, app.MsgSecretNoteEmpty}},
	{record.ErrCapacityExceeded, errorResponse{http.StatusInsufficientStorage, app.MsgStorageFull}},

	{service.ErrTokenCreationFailed, errorResponse{http.StatusInternalServerError, app.MsgLoginFailed}},
	{store.ErrMalformedRecord, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrIOFailure, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}

	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and writes the mapped status with its plain-text
// message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError && resp.status != http.StatusInsufficientStorage {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", resp.status).Msg(msg)

	http.Error(w, resp.message, resp.status)
}
