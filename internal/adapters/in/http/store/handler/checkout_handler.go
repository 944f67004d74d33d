// internal/adapters/in/http/store/handler/checkout_handler.go
package handler

import (
	"errors"
	"net/http"

	"sunshinesaree/internal/adapters/in/http/middleware"
	checkoutapp "sunshinesaree/internal/application/checkout"
)

// CheckoutHandler serves POST /store/checkout.
//
// Response codes:
// - 201: order placed (remotely or archived locally, never distinguished
//   as a failure to the client)
// - 409: cart is empty
// - 422: form validation failed, body carries per-field messages
type CheckoutHandler struct {
	uc *checkoutapp.Usecase
}

func NewCheckoutHandler(uc *checkoutapp.Usecase) http.Handler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		internalError(w, "checkout handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var form checkoutapp.Form
	if err := readJSON(r, &form); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	identity := middleware.CurrentIdentity(r)

	res, err := h.uc.PlaceOrder(r.Context(), form, identity)
	if err != nil {
		if errors.Is(err, checkoutapp.ErrEmptyCart) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "cart is empty"})
			return
		}
		var ferr checkoutapp.FieldErrors
		if errors.As(err, &ferr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": ferr,
			})
			return
		}
		internalError(w, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{
		OrderID:   res.OrderID,
		DisplayID: res.DisplayID,
		Synced:    res.PersistedRemotely,
	})
}

type checkoutResponse struct {
	OrderID   string `json:"orderId"`
	DisplayID string `json:"displayId"`
	Synced    bool   `json:"synced"`
}
