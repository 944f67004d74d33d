// internal/adapters/in/http/store/handler/auth_handler.go
package handler

import (
	"net/http"
	"strings"

	sessionapp "sunshinesaree/internal/application/session"
	userdom "sunshinesaree/internal/domain/user"
)

// AuthHandler serves the session endpoints.
// Intended mount (router side):
// - GET  /store/auth/session
// - POST /store/auth/sign-up
// - POST /store/auth/sign-in
// - POST /store/auth/google
// - POST /store/auth/sign-out
// - POST /store/auth/reset-password
type AuthHandler struct {
	session *sessionapp.Service
}

func NewAuthHandler(session *sessionapp.Service) http.Handler {
	return &AuthHandler{session: session}
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.session == nil {
		internalError(w, "auth handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	isGET := r.Method == http.MethodGet
	isPOST := r.Method == http.MethodPost

	switch {
	case isGET && strings.HasSuffix(path, "/session"):
		h.handleSession(w, r)
	case isPOST && strings.HasSuffix(path, "/sign-up"):
		h.handleSignUp(w, r)
	case isPOST && strings.HasSuffix(path, "/sign-in"):
		h.handleSignIn(w, r)
	case isPOST && strings.HasSuffix(path, "/google"):
		h.handleGoogle(w, r)
	case isPOST && strings.HasSuffix(path, "/sign-out"):
		h.handleSignOut(w, r)
	case isPOST && strings.HasSuffix(path, "/reset-password"):
		h.handleResetPassword(w, r)
	default:
		notFound(w)
	}
}

func (h *AuthHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	hostname := strings.TrimSpace(r.URL.Query().Get("hostname"))
	writeJSON(w, http.StatusOK, sessionResponse{
		User:                toUserDTO(h.session.Current()),
		LastError:           h.session.LastError(),
		GoogleAuthAvailable: h.session.IsGoogleAuthAvailable(hostname),
	})
}

func (h *AuthHandler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req authReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		badRequest(w, "email and password are required")
		return
	}

	id, err := h.session.SignUp(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		h.writeAuthErr(w, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: toUserDTO(id)})
}

func (h *AuthHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req authReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		badRequest(w, "email and password are required")
		return
	}

	id, err := h.session.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAuthErr(w, http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: toUserDTO(id)})
}

func (h *AuthHandler) handleGoogle(w http.ResponseWriter, r *http.Request) {
	var req googleReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if strings.TrimSpace(req.IDToken) == "" {
		badRequest(w, "idToken is required")
		return
	}

	id, err := h.session.SignInWithGoogle(r.Context(), req.Hostname, req.IDToken)
	if err != nil {
		h.writeAuthErr(w, http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: toUserDTO(id)})
}

func (h *AuthHandler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	h.session.SignOut(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req authReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		badRequest(w, "email is required")
		return
	}

	if err := h.session.ResetPassword(r.Context(), req.Email); err != nil {
		h.writeAuthErr(w, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password reset email sent."})
}

// writeAuthErr surfaces the session's human-readable message.
func (h *AuthHandler) writeAuthErr(w http.ResponseWriter, status int) {
	msg := h.session.LastError()
	if msg == "" {
		msg = "Authentication failed. Please try again."
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

// -------------------------
// request/response DTO
// -------------------------

type authReq struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type googleReq struct {
	Hostname string `json:"hostname"`
	IDToken  string `json:"idToken"`
}

type sessionResponse struct {
	User                *userDTO `json:"user"`
	LastError           string   `json:"lastError,omitempty"`
	GoogleAuthAvailable bool     `json:"googleAuthAvailable"`
}

type userDTO struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

func toUserDTO(id *userdom.Identity) *userDTO {
	if id == nil {
		return nil
	}
	return &userDTO{
		UID:         id.UID,
		Email:       id.Email,
		DisplayName: id.DisplayName,
		PhotoURL:    id.PhotoURL,
	}
}
