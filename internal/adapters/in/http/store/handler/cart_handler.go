// internal/adapters/in/http/store/handler/cart_handler.go
package handler

import (
	"errors"
	"net/http"
	"strings"

	cartapp "sunshinesaree/internal/application/cart"
	catalogapp "sunshinesaree/internal/application/catalog"
	cartdom "sunshinesaree/internal/domain/cart"
	"sunshinesaree/internal/domain/product"
)

// CartHandler serves the cart endpoints.
// Intended mount (router side):
// - GET    /store/cart
// - DELETE /store/cart
// - POST   /store/cart/items
// - PUT    /store/cart/items
// - DELETE /store/cart/items?productId=...
type CartHandler struct {
	cart    *cartapp.Service
	catalog *catalogapp.Service
}

func NewCartHandler(cart *cartapp.Service, catalog *catalogapp.Service) http.Handler {
	return &CartHandler{cart: cart, catalog: catalog}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.cart == nil {
		internalError(w, "cart handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	onItems := strings.HasSuffix(path, "/items")

	switch {
	case r.Method == http.MethodGet && !onItems:
		h.handleGet(w, r)
	case r.Method == http.MethodDelete && !onItems:
		h.handleClear(w, r)
	case r.Method == http.MethodPost && onItems:
		h.handleAddItem(w, r)
	case r.Method == http.MethodPut && onItems:
		h.handleSetQuantity(w, r)
	case r.Method == http.MethodDelete && onItems:
		h.handleRemoveItem(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *CartHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCartResponse(h.cart))
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if req.ProductID <= 0 {
		badRequest(w, "productId is required")
		return
	}

	p, err := h.lookup(req)
	if err != nil {
		notFound(w)
		return
	}

	h.cart.AddItem(r.Context(), p)
	writeJSON(w, http.StatusOK, toCartResponse(h.cart))
}

func (h *CartHandler) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if req.ProductID <= 0 {
		badRequest(w, "productId is required")
		return
	}

	// qty <= 0 removes the line
	h.cart.UpdateQuantity(r.Context(), req.ProductID, req.Quantity)
	writeJSON(w, http.StatusOK, toCartResponse(h.cart))
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := parseIntDefault(r.URL.Query().Get("productId"), 0)
	if productID <= 0 {
		var req cartItemReq
		if err := readJSON(r, &req); err == nil {
			productID = req.ProductID
		}
	}
	if productID <= 0 {
		badRequest(w, "productId is required")
		return
	}

	h.cart.RemoveItem(r.Context(), productID)
	writeJSON(w, http.StatusOK, toCartResponse(h.cart))
}

func (h *CartHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// lookup resolves the product reference: catalog by id, falling back to
// an inline summary (the client may carry products the seed lacks).
func (h *CartHandler) lookup(req cartItemReq) (product.Summary, error) {
	if h.catalog != nil {
		if p, err := h.catalog.GetByID(req.ProductID); err == nil {
			return p.Summary, nil
		}
	}
	if strings.TrimSpace(req.Name) != "" && req.Price > 0 {
		return product.Summary{
			ID:        req.ProductID,
			Name:      strings.TrimSpace(req.Name),
			Price:     req.Price,
			SalePrice: req.SalePrice,
			Image:     strings.TrimSpace(req.Image),
		}, nil
	}
	return product.Summary{}, errors.New("cart_handler: unknown product")
}

// -------------------------
// request/response DTO
// -------------------------

type cartItemReq struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	SalePrice *int   `json:"salePrice"`
	Image     string `json:"image"`
}

type cartResponse struct {
	Items      []cartItemDTO `json:"items"`
	TotalItems int           `json:"totalItems"`
	Subtotal   int           `json:"subtotal"`

	// Synced is false once Firestore has been marked unreachable for the
	// session; the client can surface an offline notice.
	Synced bool `json:"synced"`
}

type cartItemDTO struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	SalePrice *int   `json:"salePrice"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

func toCartResponse(svc *cartapp.Service) cartResponse {
	items := svc.Items()
	out := make([]cartItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toCartItemDTO(it))
	}
	return cartResponse{
		Items:      out,
		TotalItems: svc.TotalItems(),
		Subtotal:   svc.Subtotal(),
		Synced:     svc.RemoteAvailable(),
	}
}

func toCartItemDTO(it cartdom.LineItem) cartItemDTO {
	return cartItemDTO{
		ProductID: it.ID,
		Name:      it.Name,
		Price:     it.Price,
		SalePrice: it.SalePrice,
		Image:     it.Image,
		Quantity:  it.Quantity,
	}
}
