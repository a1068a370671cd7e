// Package workers provides the background workers the client runs and a
// Workers aggregate that starts and stops them together.
package workers

import "context"

// Worker is a background component with an explicit lifecycle.
//
// Run must not block: it starts the worker's goroutines, which live until
// ctx is cancelled or Stop is called. Stop blocks until those goroutines have
// exited and is a no-op for a worker that is not running.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
