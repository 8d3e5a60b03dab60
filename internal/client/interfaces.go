// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run keeps background synchronization running until ctx is done.
	Run(ctx context.Context) error

	// Close waits for pending remote work and releases local resources.
	Close() error
}
