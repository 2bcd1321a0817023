package server

import "errors"

var (
	// ErrNoHTTPHandler is returned when the handler set carries no HTTP API.
	ErrNoHTTPHandler = errors.New("server: no HTTP handler configured")

	// ErrNoListenAddress is returned when the server address is empty.
	ErrNoListenAddress = errors.New("server: empty listen address")
)
