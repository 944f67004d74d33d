// internal/domain/wishlist/repository_port.go
package wishlist

import "context"

// Repository is the remote replica port for wishlists.
//
// Storage (Firestore):
// - collection: wishlists
// - docId: uid (signed-in user)
// - fields: items (list), updatedAt
//
// Not-found policy: GetByUserID returns (nil, nil) when no document exists.
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*Wishlist, error)

	// SaveItems writes the full entry list with merge semantics.
	SaveItems(ctx context.Context, userID string, items []Entry) error
}

// SnapshotStore is the local replica port for the wishlist, one serialized
// entry list under a fixed key.
type SnapshotStore interface {
	Load() (items []Entry, ok bool, err error)
	Save(items []Entry) error
	Remove() error
}
