// Package delivery defines the contract every transport entry point
// implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP for now). Serve blocks until the
// server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
