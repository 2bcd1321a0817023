// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the HTTP handlers and the
// client.
//
// The server writes a Msg* constant as the plain-text body of every error
// response; the client matches on the same constant to recover the business
// error behind a status code.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a login, password, recipient or key is malformed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the password does not match.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUserNotFound is returned when no record exists for a username.
	MsgUserNotFound = "user not found"

	// MsgLoginAlreadyExists is returned when registering a taken login.
	MsgLoginAlreadyExists = "login already exists"

	// MsgNoteNotFound is returned when a note index is out of range.
	MsgNoteNotFound = "note not found"

	// MsgNoNotes is returned when deleting from an empty collection.
	MsgNoNotes = "no notes"

	// MsgSecretNoteEmpty is returned when there is no secret note to show.
	MsgSecretNoteEmpty = "secret note is empty"

	// MsgStorageFull is returned when a note collection is at capacity.
	MsgStorageFull = "note storage is full"

	// MsgRequestTooLarge is returned when a request body exceeds the size
	// the server accepts.
	MsgRequestTooLarge = "request body is too large"

	// MsgLoginFailed is returned when issuing a session token fails.
	MsgLoginFailed = "login failed"

	// MsgInternalServerError is returned for storage and other unexpected
	// server-side failures.
	MsgInternalServerError = "internal server error"
)
