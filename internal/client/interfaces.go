// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a runnable site-sync process.
type Client interface {
	// Run blocks until ctx is cancelled or the process is signalled.
	Run(ctx context.Context) error

	// Close releases the local store after pending background work ends.
	Close() error
}

var _ Client = (*App)(nil)
