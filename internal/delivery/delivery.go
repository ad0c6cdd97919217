// Package delivery defines the contract served entrypoints implement.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) whose
// lifetime is managed by the application container.
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}
