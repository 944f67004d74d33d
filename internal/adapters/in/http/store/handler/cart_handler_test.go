// internal/adapters/in/http/store/handler/cart_handler_test.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "sunshinesaree/internal/application/cart"
	catalogapp "sunshinesaree/internal/application/catalog"
	cartdom "sunshinesaree/internal/domain/cart"
)

// in-memory replica stubs so the aggregate runs for real

type stubRepo struct{}

func (stubRepo) GetByUserID(ctx context.Context, userID string) (*cartdom.Cart, error) {
	return nil, nil
}

func (stubRepo) SaveItems(ctx context.Context, userID string, items []cartdom.LineItem) error {
	return nil
}

type stubSnapshot struct {
	items []cartdom.LineItem
	has   bool
}

func (s *stubSnapshot) Load() ([]cartdom.LineItem, bool, error) { return s.items, s.has, nil }

func (s *stubSnapshot) Save(items []cartdom.LineItem) error {
	s.items = items
	s.has = true
	return nil
}

func (s *stubSnapshot) Remove() error {
	s.items = nil
	s.has = false
	return nil
}

func newCartHandler(t *testing.T) http.Handler {
	t.Helper()
	svc := cartapp.NewService(stubRepo{}, &stubSnapshot{})
	svc.Bind(context.Background(), "")
	return NewCartHandler(svc, catalogapp.NewService(nil, nil))
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCartGetEmpty(t *testing.T) {
	h := newCartHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/store/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Subtotal)
	assert.True(t, res.Synced)
}

func TestCartAddFromCatalog(t *testing.T) {
	h := newCartHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/store/cart/items", `{"productId":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Items[0].ProductID)
	assert.Equal(t, 1, res.Items[0].Quantity)
	// catalog product 1 is on sale at 999
	assert.Equal(t, 999, res.Subtotal)
}

func TestCartAddUnknownProductWithoutInlineDataIs404(t *testing.T) {
	h := newCartHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/store/cart/items", `{"productId":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartAddInlineProduct(t *testing.T) {
	h := newCartHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/store/cart/items",
		`{"productId":777,"name":"Custom Saree","price":1200}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, 1200, res.Subtotal)
}

func TestCartUpdateQuantityAndRemove(t *testing.T) {
	h := newCartHandler(t)
	doJSON(t, h, http.MethodPost, "/store/cart/items", `{"productId":1}`)

	rec := doJSON(t, h, http.MethodPut, "/store/cart/items", `{"productId":1,"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 3, res.TotalItems)

	rec = doJSON(t, h, http.MethodDelete, "/store/cart/items?productId=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Items)
}

func TestCartClear(t *testing.T) {
	h := newCartHandler(t)
	doJSON(t, h, http.MethodPost, "/store/cart/items", `{"productId":1}`)

	rec := doJSON(t, h, http.MethodDelete, "/store/cart", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/store/cart", "")
	var res cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Items)
}

func TestCartBadRequests(t *testing.T) {
	h := newCartHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/store/cart/items", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/store/cart/items", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPatch, "/store/cart", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
