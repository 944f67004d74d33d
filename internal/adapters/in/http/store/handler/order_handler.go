// internal/adapters/in/http/store/handler/order_handler.go
package handler

import (
	"errors"
	"net/http"

	"sunshinesaree/internal/adapters/in/http/middleware"
	orderviewapp "sunshinesaree/internal/application/orderview"
)

// OrderHandler serves GET /store/orders/{id} (confirmation screen data).
// The lookup never 404s for a well-formed id: a lost order resolves to a
// placeholder view with source "placeholder".
type OrderHandler struct {
	query *orderviewapp.Query
}

func NewOrderHandler(query *orderviewapp.Query) http.Handler {
	return &OrderHandler{query: query}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.query == nil {
		internalError(w, "order handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	id := lastPathSegment(r.URL.Path)
	if id == "" || id == "orders" {
		badRequest(w, "order id is required")
		return
	}

	view, err := h.query.GetByID(r.Context(), id, middleware.CurrentIdentity(r))
	if err != nil {
		if errors.Is(err, orderviewapp.ErrMissingID) {
			badRequest(w, "order id is required")
			return
		}
		internalError(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, view)
}
