// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	orderdom "sunshinesaree/internal/domain/order"
)

// OrderRepositoryFS implements order.Repository using Firestore.
//
// Collection design:
// - collection: orders
// - docId: auto-generated; returned from Create and used as the canonical
//   order id from then on.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("orders")
}

// Create persists the order under a new auto id and returns that id.
func (r *OrderRepositoryFS) Create(ctx context.Context, o *orderdom.Order) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("order_repository_fs: firestore client is nil")
	}
	if o == nil {
		return "", errors.New("order_repository_fs: order is nil")
	}

	doc := r.col().NewDoc()
	if _, err := doc.Set(ctx, orderDocFromDomain(o)); err != nil {
		return "", err
	}
	return doc.ID, nil
}

// GetByID returns (nil, nil) if not found (nil policy).
func (r *OrderRepositoryFS) GetByID(ctx context.Context, id string) (*orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(id)
	if oid == "" {
		return nil, errors.New("order_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(oid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var doc orderDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	o := doc.toDomain()
	// docId is the source of truth for the order id.
	o.ID = oid
	return o, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type orderDoc struct {
	Customer        orderdom.Customer        `firestore:"customer"`
	ShippingAddress orderdom.ShippingAddress `firestore:"shippingAddress"`
	Items           []orderdom.ItemSnapshot  `firestore:"items"`
	Payment         orderdom.Payment         `firestore:"payment"`
	Amounts         orderdom.Amounts         `firestore:"amounts"`
	Notes           string                   `firestore:"notes"`
	Status          string                   `firestore:"status"`
	CreatedAt       time.Time                `firestore:"createdAt,serverTimestamp"`
}

func orderDocFromDomain(o *orderdom.Order) orderDoc {
	return orderDoc{
		Customer:        o.Customer,
		ShippingAddress: o.ShippingAddress,
		Items:           o.Items,
		Payment:         o.Payment,
		Amounts:         o.Amounts,
		Notes:           o.Notes,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
	}
}

func (d orderDoc) toDomain() *orderdom.Order {
	items := d.Items
	if items == nil {
		items = []orderdom.ItemSnapshot{}
	}
	return &orderdom.Order{
		Customer:        d.Customer,
		ShippingAddress: d.ShippingAddress,
		Items:           items,
		Payment:         d.Payment,
		Amounts:         d.Amounts,
		Notes:           d.Notes,
		Status:          d.Status,
		CreatedAt:       d.CreatedAt,
	}
}
