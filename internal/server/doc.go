// Package server runs the HTTP API of the note keeper and shuts it down
// gracefully once the run context is cancelled.
package server
