// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a serving surface (e.g., the HTTP server) started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}
