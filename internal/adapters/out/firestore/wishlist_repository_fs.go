// internal/adapters/out/firestore/wishlist_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	wishdom "sunshinesaree/internal/domain/wishlist"
)

// WishlistRepositoryFS implements wishlist.Repository using Firestore.
//
// Collection design:
// - collection: wishlists
// - docId: uid (signed-in user)
// - fields: items (list), updatedAt
type WishlistRepositoryFS struct {
	Client *firestore.Client
}

func NewWishlistRepositoryFS(client *firestore.Client) *WishlistRepositoryFS {
	return &WishlistRepositoryFS{Client: client}
}

func (r *WishlistRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("wishlists")
}

// GetByUserID returns (nil, nil) if not found (nil policy).
func (r *WishlistRepositoryFS) GetByUserID(ctx context.Context, userID string) (*wishdom.Wishlist, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("wishlist_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("wishlist_repository_fs: userID is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var doc wishlistDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	// New() drops duplicate product ids from replica data.
	return wishdom.New(doc.Items), nil
}

// SaveItems writes the full entry list with merge semantics.
func (r *WishlistRepositoryFS) SaveItems(ctx context.Context, userID string, items []wishdom.Entry) error {
	if r == nil || r.Client == nil {
		return errors.New("wishlist_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("wishlist_repository_fs: userID is empty")
	}
	if items == nil {
		items = []wishdom.Entry{}
	}

	_, err := r.col().Doc(uid).Set(ctx, map[string]any{
		"items":     items,
		"updatedAt": time.Now().UTC(),
	}, firestore.MergeAll)
	return err
}

type wishlistDoc struct {
	Items     []wishdom.Entry `firestore:"items"`
	UpdatedAt time.Time       `firestore:"updatedAt"`
}
