// internal/adapters/out/localstore/cart_snapshot.go
package localstore

import (
	"errors"

	cartdom "sunshinesaree/internal/domain/cart"
	"sunshinesaree/internal/infra/localstore"
)

// Fixed snapshot keys, mirroring the browser-storage keys of the web client.
const (
	cartKey     = "cart"
	wishlistKey = "wishlist"
)

// CartSnapshotLS implements cart.SnapshotStore on the file-backed store.
type CartSnapshotLS struct {
	Store *localstore.Store
}

func NewCartSnapshotLS(store *localstore.Store) *CartSnapshotLS {
	return &CartSnapshotLS{Store: store}
}

func (s *CartSnapshotLS) Load() ([]cartdom.LineItem, bool, error) {
	if s == nil || s.Store == nil {
		return nil, false, errors.New("cart_snapshot_ls: store is nil")
	}
	var items []cartdom.LineItem
	ok, err := s.Store.GetJSON(cartKey, &items)
	if err != nil || !ok {
		return nil, false, err
	}
	return items, true, nil
}

func (s *CartSnapshotLS) Save(items []cartdom.LineItem) error {
	if s == nil || s.Store == nil {
		return errors.New("cart_snapshot_ls: store is nil")
	}
	if items == nil {
		items = []cartdom.LineItem{}
	}
	return s.Store.SetJSON(cartKey, items)
}

func (s *CartSnapshotLS) Remove() error {
	if s == nil || s.Store == nil {
		return errors.New("cart_snapshot_ls: store is nil")
	}
	return s.Store.Remove(cartKey)
}
