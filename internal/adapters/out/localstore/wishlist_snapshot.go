// internal/adapters/out/localstore/wishlist_snapshot.go
package localstore

import (
	"errors"

	wishdom "sunshinesaree/internal/domain/wishlist"
	"sunshinesaree/internal/infra/localstore"
)

// WishlistSnapshotLS implements wishlist.SnapshotStore on the file-backed store.
type WishlistSnapshotLS struct {
	Store *localstore.Store
}

func NewWishlistSnapshotLS(store *localstore.Store) *WishlistSnapshotLS {
	return &WishlistSnapshotLS{Store: store}
}

func (s *WishlistSnapshotLS) Load() ([]wishdom.Entry, bool, error) {
	if s == nil || s.Store == nil {
		return nil, false, errors.New("wishlist_snapshot_ls: store is nil")
	}
	var items []wishdom.Entry
	ok, err := s.Store.GetJSON(wishlistKey, &items)
	if err != nil || !ok {
		return nil, false, err
	}
	return items, true, nil
}

func (s *WishlistSnapshotLS) Save(items []wishdom.Entry) error {
	if s == nil || s.Store == nil {
		return errors.New("wishlist_snapshot_ls: store is nil")
	}
	if items == nil {
		items = []wishdom.Entry{}
	}
	return s.Store.SetJSON(wishlistKey, items)
}

func (s *WishlistSnapshotLS) Remove() error {
	if s == nil || s.Store == nil {
		return errors.New("wishlist_snapshot_ls: store is nil")
	}
	return s.Store.Remove(wishlistKey)
}
