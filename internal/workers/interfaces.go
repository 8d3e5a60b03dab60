// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs several
// workers together, and the SyncWorker that drives sync cycles.
package workers

import (
	"context"

	"github.com/MKhiriev/go-goal-keeper/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// SessionSource returns the session current at call time.
type SessionSource interface {
	Current(ctx context.Context) (models.Session, error)
}
