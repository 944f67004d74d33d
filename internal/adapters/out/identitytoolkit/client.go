// internal/adapters/out/identitytoolkit/client.go
package identitytoolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client calls the Identity Toolkit REST API. The Admin SDK cannot verify
// passwords, so email/password sign-in goes through the same endpoint the
// web SDK uses, authenticated with the project's web API key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

var (
	ErrNotConfigured      = errors.New("identitytoolkit: web api key not configured")
	ErrInvalidCredentials = errors.New("identitytoolkit: invalid email or password")
)

// New returns a Client. apiKey may be empty; calls then fail with
// ErrNotConfigured.
func New(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     strings.TrimSpace(apiKey),
	}
}

// SignInResult is the subset of the verifyPassword response this backend uses.
type SignInResult struct {
	UID   string
	Email string
}

// VerifyPassword checks email/password credentials and returns the uid.
func (c *Client) VerifyPassword(ctx context.Context, email, password string) (*SignInResult, error) {
	if c == nil || c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, fmt.Errorf("identitytoolkit: marshal request: %w", err)
	}

	url := c.baseURL + "/accounts:signInWithPassword?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("identitytoolkit: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identitytoolkit: sign in request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.Unmarshal(bodyBytes, &apiErr)

		msg := apiErr.Error.Message
		// The API reports bad credentials with these message codes.
		if msg == "EMAIL_NOT_FOUND" || msg == "INVALID_PASSWORD" || msg == "INVALID_LOGIN_CREDENTIALS" {
			return nil, ErrInvalidCredentials
		}

		log.Printf("[identitytoolkit] sign in failed status=%d message=%s", resp.StatusCode, msg)
		return nil, fmt.Errorf("identitytoolkit: sign in failed: status=%d message=%s", resp.StatusCode, msg)
	}

	var res struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		return nil, fmt.Errorf("identitytoolkit: decode response: %w", err)
	}
	if res.LocalID == "" {
		return nil, errors.New("identitytoolkit: response has empty localId")
	}

	return &SignInResult{UID: res.LocalID, Email: res.Email}, nil
}
