// internal/adapters/in/http/middleware/identity.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	session "sunshinesaree/internal/application/session"
	userdom "sunshinesaree/internal/domain/user"
)

// FirebaseAuthClient is an alias so DI can pass the firebase client
// without importing the SDK package directly.
type FirebaseAuthClient = fbauth.Client

type ctxKey struct{ name string }

var ctxKeyIdentity = ctxKey{name: "identity"}

// IdentityMiddleware verifies an optional
//
//   - Authorization: Bearer <ID_TOKEN>
//
// header. A valid token attaches the signed-in identity; no header means
// guest usage and the request proceeds. Only a present-but-invalid token
// is rejected.
type IdentityMiddleware struct {
	FirebaseAuth *FirebaseAuthClient
	Session      *session.Service
}

func (m *IdentityMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			// guest request
			m.attach(r.Context(), nil)
			next.ServeHTTP(w, r)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" || m.FirebaseAuth == nil {
			http.Error(w, "unauthorized: invalid bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		id := &userdom.Identity{UID: strings.TrimSpace(token.UID)}
		if emailRaw, ok := token.Claims["email"]; ok {
			if e, ok2 := emailRaw.(string); ok2 {
				id.Email = strings.TrimSpace(e)
			}
		}
		if nameRaw, ok := token.Claims["name"]; ok {
			if n, ok2 := nameRaw.(string); ok2 {
				id.DisplayName = strings.TrimSpace(n)
			}
		}

		m.attach(r.Context(), id)

		ctx := context.WithValue(r.Context(), ctxKeyIdentity, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *IdentityMiddleware) attach(ctx context.Context, id *userdom.Identity) {
	if m.Session != nil {
		m.Session.Attach(ctx, id)
	}
}

// CurrentIdentity returns the verified identity, or nil for guests.
func CurrentIdentity(r *http.Request) *userdom.Identity {
	v := r.Context().Value(ctxKeyIdentity)
	if v == nil {
		return nil
	}
	id, ok := v.(*userdom.Identity)
	if !ok {
		return nil
	}
	return id
}
