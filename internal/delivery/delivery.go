// Package delivery defines the contract every user-facing surface of the
// client implements.
package delivery

import "context"

// Delivery is a long-running user-facing surface, such as the interactive
// console. Serve blocks until the surface shuts down or ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
