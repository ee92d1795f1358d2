// Package delivery defines the transports the application serves.
package delivery

import "context"

// Delivery is a transport started by the application after dependency injection.
type Delivery interface {
	Serve(ctx context.Context) error
}
