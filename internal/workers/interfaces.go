// Package workers runs the background jobs of the note server. Every worker
// runs until the context passed to Run is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
