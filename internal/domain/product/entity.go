// internal/domain/product/entity.go
package product

import "strings"

// Summary is the product reference carried by carts, wishlists and order
// item snapshots. Prices are whole currency units; SalePrice is nil when
// the product is not on sale.
type Summary struct {
	ID        int    `json:"id" firestore:"id"`
	Name      string `json:"name" firestore:"name"`
	Price     int    `json:"price" firestore:"price"`
	SalePrice *int   `json:"salePrice" firestore:"salePrice"`
	Image     string `json:"image" firestore:"image"`
}

// EffectivePrice returns the sale price when present, otherwise the base price.
func (s Summary) EffectivePrice() int {
	if s.SalePrice != nil {
		return *s.SalePrice
	}
	return s.Price
}

// OnSale reports whether a sale price is set.
func (s Summary) OnSale() bool {
	return s.SalePrice != nil
}

// Product is a full catalog entry.
type Product struct {
	Summary

	Category    string `json:"category"`
	Description string `json:"description"`
}

// MatchesQuery reports whether the product matches a free-text query
// (case-insensitive substring over name and description).
func (p Product) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
