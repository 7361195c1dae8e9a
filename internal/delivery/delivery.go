// Package delivery defines the contract implemented by every serving surface.
package delivery

import "context"

// Delivery is a long-running serving component started by the composition root.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
