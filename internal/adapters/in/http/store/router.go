// internal/adapters/in/http/store/router.go
package store

import "net/http"

// Deps is the buyer-facing handler set.
type Deps struct {
	Product  http.Handler
	Cart     http.Handler
	Wishlist http.Handler
	Checkout http.Handler
	Order    http.Handler
	Auth     http.Handler
}

// Register registers storefront routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	if deps.Product != nil {
		mux.Handle("/store/products", deps.Product)
		mux.Handle("/store/products/", deps.Product)
	}

	if deps.Cart != nil {
		mux.Handle("/store/cart", deps.Cart)
		mux.Handle("/store/cart/", deps.Cart)
	}

	if deps.Wishlist != nil {
		mux.Handle("/store/wishlist", deps.Wishlist)
		mux.Handle("/store/wishlist/", deps.Wishlist)
	}

	if deps.Checkout != nil {
		mux.Handle("/store/checkout", deps.Checkout)
		mux.Handle("/store/checkout/", deps.Checkout)
	}

	if deps.Order != nil {
		mux.Handle("/store/orders", deps.Order)
		mux.Handle("/store/orders/", deps.Order)
	}

	if deps.Auth != nil {
		mux.Handle("/store/auth/", deps.Auth)
	}
}
