// internal/adapters/in/http/store/handler/product_handler.go
package handler

import (
	"net/http"
	"strings"

	"sunshinesaree/internal/adapters/in/http/middleware"
	catalogapp "sunshinesaree/internal/application/catalog"
)

// ProductHandler serves the catalog endpoints.
// Intended mount (router side):
// - GET  /store/products?category=silk
// - GET  /store/products?q=kanjivaram
// - GET  /store/products/{id}
// - POST /store/products/{id}/track  {"action":"view"}
type ProductHandler struct {
	catalog *catalogapp.Service
}

func NewProductHandler(catalog *catalogapp.Service) http.Handler {
	return &ProductHandler{catalog: catalog}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		internalError(w, "product handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/track"):
		h.handleTrack(w, r, path)
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/products"):
		h.handleList(w, r)
	case r.Method == http.MethodGet:
		h.handleGet(w, r, path)
	default:
		methodNotAllowed(w)
	}
}

func (h *ProductHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q != "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"products": h.catalog.Search(q),
			"query":    q,
		})
		return
	}

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, map[string]any{
		"products":   h.catalog.List(category),
		"categories": catalogapp.Categories,
	})
}

func (h *ProductHandler) handleGet(w http.ResponseWriter, r *http.Request, path string) {
	id := parseIntDefault(lastPathSegment(path), 0)
	if id <= 0 {
		badRequest(w, "product id is required")
		return
	}

	p, err := h.catalog.GetByID(id)
	if err != nil {
		notFound(w)
		return
	}

	// detail views are tracked for signed-in users
	if identity := middleware.CurrentIdentity(r); identity != nil {
		h.catalog.TrackAction(r.Context(), identity.UID, id, "view")
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) handleTrack(w http.ResponseWriter, r *http.Request, path string) {
	// path: .../products/{id}/track
	trimmed := strings.TrimSuffix(path, "/track")
	id := parseIntDefault(lastPathSegment(trimmed), 0)
	if id <= 0 {
		badRequest(w, "product id is required")
		return
	}

	var req trackReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	action := strings.TrimSpace(req.Action)
	if action == "" {
		badRequest(w, "action is required")
		return
	}

	identity := middleware.CurrentIdentity(r)
	if identity == nil {
		// guests are not tracked; accepted anyway
		w.WriteHeader(http.StatusAccepted)
		return
	}

	h.catalog.TrackAction(r.Context(), identity.UID, id, action)
	w.WriteHeader(http.StatusAccepted)
}

type trackReq struct {
	Action string `json:"action"`
}
