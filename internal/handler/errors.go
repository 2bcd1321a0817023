package handler

import "errors"

var (
	// ErrNoServices is returned by NewHandlers when no services are given.
	ErrNoServices = errors.New("handler: services are required")

	// ErrNoHTTPAddress is returned by NewHandlers for an empty server address.
	ErrNoHTTPAddress = errors.New("handler: empty HTTP address")
)
