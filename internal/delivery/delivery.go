// Package delivery defines the contract every transport entrypoint
// (HTTP server, workers) fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport entrypoint. Serve blocks until the
// delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
