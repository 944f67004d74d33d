// internal/domain/wishlist/entity.go
package wishlist

import (
	"errors"

	"sunshinesaree/internal/domain/product"
)

var ErrInvalidWishlist = errors.New("wishlist: invalid")

// Entry is one wishlisted product. No quantity; the product id is the
// set-membership key.
type Entry struct {
	product.Summary
}

// Wishlist is the in-memory wishlist aggregate state with set semantics
// over product ids.
type Wishlist struct {
	Items []Entry `json:"items" firestore:"items"`
}

// New returns a wishlist with the given entries, dropping duplicates.
func New(items []Entry) *Wishlist {
	w := &Wishlist{Items: []Entry{}}
	for _, it := range items {
		if w.Contains(it.ID) {
			continue
		}
		w.Items = append(w.Items, it)
	}
	return w
}

// Add inserts the product unless already present. True set-insert
// idempotence: adding twice equals adding once.
func (w *Wishlist) Add(p product.Summary) error {
	if w == nil {
		return ErrInvalidWishlist
	}
	if w.Contains(p.ID) {
		return nil
	}
	w.Items = append(w.Items, Entry{Summary: p})
	return nil
}

// Remove deletes the entry for the product id. No-op when absent.
func (w *Wishlist) Remove(productID int) error {
	if w == nil {
		return ErrInvalidWishlist
	}
	for i := range w.Items {
		if w.Items[i].ID == productID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

// Contains is the pure membership query.
func (w *Wishlist) Contains(productID int) bool {
	if w == nil {
		return false
	}
	for i := range w.Items {
		if w.Items[i].ID == productID {
			return true
		}
	}
	return false
}

// Clear empties the list.
func (w *Wishlist) Clear() {
	if w == nil {
		return
	}
	w.Items = []Entry{}
}

// Snapshot returns a copy of the entries.
func (w *Wishlist) Snapshot() []Entry {
	if w == nil || len(w.Items) == 0 {
		return []Entry{}
	}
	out := make([]Entry, len(w.Items))
	copy(out, w.Items)
	return out
}
