// internal/domain/cart/entity.go
package cart

import (
	"errors"

	"sunshinesaree/internal/domain/product"
)

var ErrInvalidCart = errors.New("cart: invalid")

// LineItem is one line in the cart: a product reference plus quantity.
// Uniqueness is defined by the product id; Quantity is always >= 1
// (a decrement to zero removes the line).
type LineItem struct {
	product.Summary

	Quantity int `json:"quantity" firestore:"quantity"`
}

// Cart is the in-memory cart aggregate state. The aggregate owns the item
// list exclusively; Firestore and the local snapshot are replicas.
type Cart struct {
	Items []LineItem `json:"items" firestore:"items"`
}

// New returns a cart with the given items, dropping entries that violate
// the line-item invariants (non-positive quantity, duplicate product id).
// Used when adopting replica data of uncertain shape.
func New(items []LineItem) *Cart {
	c := &Cart{Items: []LineItem{}}
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if idx := c.index(it.ID); idx >= 0 {
			// duplicate product id: later replica entries fold into the first
			c.Items[idx].Quantity += it.Quantity
			continue
		}
		c.Items = append(c.Items, it)
	}
	return c
}

// Add increments the quantity for the product by 1, inserting a new line
// with quantity 1 when absent. Calling twice adds quantity twice.
func (c *Cart) Add(p product.Summary) error {
	if c == nil {
		return ErrInvalidCart
	}
	if idx := c.index(p.ID); idx >= 0 {
		c.Items[idx].Quantity++
		return nil
	}
	c.Items = append(c.Items, LineItem{Summary: p, Quantity: 1})
	return nil
}

// Remove deletes the line for the product id. No-op when absent.
func (c *Cart) Remove(productID int) error {
	if c == nil {
		return ErrInvalidCart
	}
	if idx := c.index(productID); idx >= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	}
	return nil
}

// SetQuantity sets the quantity directly (not incrementally). A quantity
// <= 0 removes the line. No upper bound is enforced.
func (c *Cart) SetQuantity(productID, quantity int) error {
	if c == nil {
		return ErrInvalidCart
	}
	if quantity <= 0 {
		return c.Remove(productID)
	}
	if idx := c.index(productID); idx >= 0 {
		c.Items[idx].Quantity = quantity
	}
	return nil
}

// Clear empties the item list.
func (c *Cart) Clear() {
	if c == nil {
		return
	}
	c.Items = []LineItem{}
}

// TotalItems is the sum of quantities over all lines.
func (c *Cart) TotalItems() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// Subtotal is the sum of effective price * quantity over all lines.
func (c *Cart) Subtotal() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, it := range c.Items {
		total += it.EffectivePrice() * it.Quantity
	}
	return total
}

// Snapshot returns a copy of the item list.
func (c *Cart) Snapshot() []LineItem {
	if c == nil || len(c.Items) == 0 {
		return []LineItem{}
	}
	out := make([]LineItem, len(c.Items))
	copy(out, c.Items)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

func (c *Cart) index(productID int) int {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return i
		}
	}
	return -1
}
