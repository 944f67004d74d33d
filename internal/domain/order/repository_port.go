// internal/domain/order/repository_port.go
package order

import "context"

// Repository is the remote store port for orders.
//
// Storage (Firestore):
// - collection: orders
// - docId: auto-generated per order; the store-assigned id becomes the
//   canonical order id after a successful save.
type Repository interface {
	// Create persists the order and returns the store-assigned id.
	Create(ctx context.Context, o *Order) (string, error)

	// GetByID returns (nil, nil) when no document exists (nil policy).
	GetByID(ctx context.Context, id string) (*Order, error)
}

// Archive is the local fallback port: an append-only list of orders that
// could not be persisted remotely, stored under a fixed snapshot key.
type Archive interface {
	// Append stores the order under the client-generated id.
	Append(id string, o *Order) error

	// FindByID scans the archived list. ok is false when absent.
	FindByID(id string) (o *Order, ok bool, err error)
}
