// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/record"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

var errInvalidNoteID = errors.New("invalid id")

// userMessages turns the business errors returned by the client services
// into the short messages shown under a form. The first match wins.
var userMessages = []struct {
	err error
	msg string
}{
	{errInvalidNoteID, "invalid id"},
	{service.ErrWrongPassword, "wrong password"},
	{store.ErrLoginAlreadyExists, "user exists"},
	{store.ErrRecordNotFound, "user doesn't exist"},
	{record.ErrIndexOutOfRange, "invalid id"},
	{record.ErrEmptyCollection, "there are no notes"},
	{record.ErrCapacityExceeded, "storage is full"},
	{record.ErrDecryptUnavailable, "secret note is empty"},
	{service.ErrTokenIsExpiredOrInvalid, "session expired, log in again"},
	{service.ErrNotLoggedIn, "not logged in"},
	{service.ErrInvalidDataProvided, "invalid input: usernames and passwords must match [a-zA-Z0-9]{5,31}"},
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
