// internal/adapters/out/identitytoolkit/client_test.go
package identitytoolkit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key")
	c.baseURL = srv.URL
	return c
}

func TestVerifyPasswordSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "priya@example.com", body["email"])
		assert.Equal(t, true, body["returnSecureToken"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"localId": "uid-123",
			"email":   "priya@example.com",
		})
	})

	res, err := c.VerifyPassword(context.Background(), "priya@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "uid-123", res.UID)
	assert.Equal(t, "priya@example.com", res.Email)
}

func TestVerifyPasswordInvalidCredentials(t *testing.T) {
	for _, code := range []string{"EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS"} {
		t.Run(code, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]string{"message": code},
				})
			})

			_, err := c.VerifyPassword(context.Background(), "a@b.c", "wrong")
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestVerifyPasswordOtherAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "API_KEY_INVALID"},
		})
	})

	_, err := c.VerifyPassword(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyPasswordNotConfigured(t *testing.T) {
	c := New("")
	_, err := c.VerifyPassword(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVerifyPasswordBlankInputs(t *testing.T) {
	c := New("key")
	_, err := c.VerifyPassword(context.Background(), "  ", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = c.VerifyPassword(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
