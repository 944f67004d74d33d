// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is the remote replica port for carts.
//
// Storage (Firestore):
// - collection: carts
// - docId: uid (signed-in user)
// - fields: items (list), updatedAt
//
// Not-found policy: GetByUserID returns (nil, nil) when no document exists;
// the application layer treats nil as "nothing to reconcile".
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*Cart, error)

	// SaveItems writes the full item list with merge semantics, so other
	// fields on the document (if any) are preserved.
	SaveItems(ctx context.Context, userID string, items []LineItem) error
}

// SnapshotStore is the local replica port: one serialized item list under
// a fixed key, mirroring the browser-storage fallback.
type SnapshotStore interface {
	// Load returns (nil, false, nil) when no snapshot exists.
	// A malformed snapshot yields an error; callers log and continue empty.
	Load() (items []LineItem, ok bool, err error)

	Save(items []LineItem) error

	Remove() error
}
