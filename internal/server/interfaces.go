package server

import "context"

// Server defines the lifecycle contract of the API server.
//
// RunServer blocks until ctx is cancelled or the listener fails. Shutdown
// stops accepting connections and waits for in-flight requests within ctx.
type Server interface {
	RunServer(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
