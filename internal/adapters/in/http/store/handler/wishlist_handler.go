// internal/adapters/in/http/store/handler/wishlist_handler.go
package handler

import (
	"net/http"
	"strings"

	catalogapp "sunshinesaree/internal/application/catalog"
	wishapp "sunshinesaree/internal/application/wishlist"
	"sunshinesaree/internal/domain/product"
	wishdom "sunshinesaree/internal/domain/wishlist"
)

// WishlistHandler serves the wishlist endpoints.
// Intended mount (router side):
// - GET    /store/wishlist
// - DELETE /store/wishlist
// - POST   /store/wishlist/items
// - DELETE /store/wishlist/items?productId=...
type WishlistHandler struct {
	wishlist *wishapp.Service
	catalog  *catalogapp.Service
}

func NewWishlistHandler(wishlist *wishapp.Service, catalog *catalogapp.Service) http.Handler {
	return &WishlistHandler{wishlist: wishlist, catalog: catalog}
}

func (h *WishlistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.wishlist == nil {
		internalError(w, "wishlist handler is not configured")
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
	case r.Method == http.MethodDelete && onItems:
		h.handleRemoveItem(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *WishlistHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toWishlistResponse(h.wishlist))
}

func (h *WishlistHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req wishlistItemReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if req.ProductID <= 0 {
		badRequest(w, "productId is required")
		return
	}

	var p product.Summary
	if h.catalog != nil {
		if full, err := h.catalog.GetByID(req.ProductID); err == nil {
			p = full.Summary
		}
	}
	if p.ID == 0 {
		if strings.TrimSpace(req.Name) == "" || req.Price <= 0 {
			notFound(w)
			return
		}
		p = product.Summary{
			ID:        req.ProductID,
			Name:      strings.TrimSpace(req.Name),
			Price:     req.Price,
			SalePrice: req.SalePrice,
			Image:     strings.TrimSpace(req.Image),
		}
	}

	h.wishlist.AddItem(r.Context(), p)
	writeJSON(w, http.StatusOK, toWishlistResponse(h.wishlist))
}

func (h *WishlistHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := parseIntDefault(r.URL.Query().Get("productId"), 0)
	if productID <= 0 {
		var req wishlistItemReq
		if err := readJSON(r, &req); err == nil {
			productID = req.ProductID
		}
	}
	if productID <= 0 {
		badRequest(w, "productId is required")
		return
	}

	h.wishlist.RemoveItem(r.Context(), productID)
	writeJSON(w, http.StatusOK, toWishlistResponse(h.wishlist))
}

func (h *WishlistHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	h.wishlist.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// -------------------------
// request/response DTO
// -------------------------

type wishlistItemReq struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	SalePrice *int   `json:"salePrice"`
	Image     string `json:"image"`
}

type wishlistResponse struct {
	Items  []wishlistItemDTO `json:"items"`
	Synced bool              `json:"synced"`
}

type wishlistItemDTO struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	SalePrice *int   `json:"salePrice"`
	Image     string `json:"image"`
}

func toWishlistResponse(svc *wishapp.Service) wishlistResponse {
	entries := svc.Items()
	out := make([]wishlistItemDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toWishlistItemDTO(e))
	}
	return wishlistResponse{
		Items:  out,
		Synced: svc.RemoteAvailable(),
	}
}

func toWishlistItemDTO(e wishdom.Entry) wishlistItemDTO {
	return wishlistItemDTO{
		ProductID: e.ID,
		Name:      e.Name,
		Price:     e.Price,
		SalePrice: e.SalePrice,
		Image:     e.Image,
	}
}
