// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutines and returns immediately; they exit
// when ctx is cancelled or Stop is called. Stop blocks until the worker has
// fully exited and is safe to call on a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
