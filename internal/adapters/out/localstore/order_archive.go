// internal/adapters/out/localstore/order_archive.go
package localstore

import (
	"errors"
	"strings"
	"time"

	orderdom "sunshinesaree/internal/domain/order"
	"sunshinesaree/internal/infra/localstore"
)

// offlineOrdersKey holds the append-only list of orders that could not be
// persisted remotely.
const offlineOrdersKey = "offlineOrders"

// OrderArchiveLS implements order.Archive on the file-backed store.
type OrderArchiveLS struct {
	Store *localstore.Store
}

func NewOrderArchiveLS(store *localstore.Store) *OrderArchiveLS {
	return &OrderArchiveLS{Store: store}
}

// archivedOrder is the stored shape: the order record plus its id, which
// in the archive is always the client-generated one.
type archivedOrder struct {
	ID string `json:"id"`
	orderdom.Order
}

// Append stores the order under the client-generated id.
func (s *OrderArchiveLS) Append(id string, o *orderdom.Order) error {
	if s == nil || s.Store == nil {
		return errors.New("order_archive_ls: store is nil")
	}
	if o == nil {
		return errors.New("order_archive_ls: order is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("order_archive_ls: id is empty")
	}

	list, _, err := s.load()
	if err != nil {
		// A corrupt archive must not block checkout; start a fresh list.
		list = nil
	}

	rec := archivedOrder{ID: id, Order: *o}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	list = append(list, rec)

	return s.Store.SetJSON(offlineOrdersKey, list)
}

// FindByID scans the archived list for a matching id.
func (s *OrderArchiveLS) FindByID(id string) (*orderdom.Order, bool, error) {
	if s == nil || s.Store == nil {
		return nil, false, errors.New("order_archive_ls: store is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false, nil
	}

	list, ok, err := s.load()
	if err != nil || !ok {
		return nil, false, err
	}

	for i := range list {
		if list[i].ID == id {
			o := list[i].Order
			o.ID = list[i].ID
			return &o, true, nil
		}
	}
	return nil, false, nil
}

func (s *OrderArchiveLS) load() ([]archivedOrder, bool, error) {
	var list []archivedOrder
	ok, err := s.Store.GetJSON(offlineOrdersKey, &list)
	return list, ok, err
}
