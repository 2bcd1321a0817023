// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUsernameInContext is returned when an authenticated route runs
	// without the auth middleware.
	ErrNoUsernameInContext = errors.New("no username in request context")

	// ErrInvalidNoteID is returned when the {id} path segment is not an
	// integer.
	ErrInvalidNoteID = errors.New("invalid note id")
)
