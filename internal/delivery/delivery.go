// Package delivery defines the contract between the application runner and
// its transport implementations.
package delivery

import "context"

// Delivery is a transport that serves the application until its context is
// cancelled or the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
