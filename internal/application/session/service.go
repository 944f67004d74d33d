// internal/application/session/service.go
package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	fbauth "firebase.google.com/go/v4/auth"

	"sunshinesaree/internal/adapters/out/identitytoolkit"
	userdom "sunshinesaree/internal/domain/user"
)

// Hostnames where Google popup sign-in is known to work. Extendable via
// configuration; anything else gets the "not available" message.
var defaultGoogleAuthDomains = []string{
	"localhost",
	"sunshinesaree.vercel.app",
}

// EmailClient delivers the password reset link.
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// Binder is notified when the session identity changes (cart and wishlist
// aggregates re-run their reconciliation protocol).
type Binder interface {
	Bind(ctx context.Context, userID string)
}

// Service tracks the current signed-in identity (nil for guest usage) and
// exposes the auth operations of the store. The last auth failure is kept
// as a single human-readable message; identity-service failures never
// crash a flow.
type Service struct {
	mu sync.Mutex

	current   *userdom.Identity
	lastError string

	firebaseAuth *fbauth.Client
	toolkit      *identitytoolkit.Client

	users     userdom.Repository
	userLocal userdom.SnapshotStore

	mailer   EmailClient
	mailFrom string

	googleDomains []string
	binders       []Binder

	firestoreAvailable bool
}

func NewService(
	firebaseAuth *fbauth.Client,
	toolkit *identitytoolkit.Client,
	users userdom.Repository,
	userLocal userdom.SnapshotStore,
	mailer EmailClient,
	mailFrom string,
	extraGoogleDomains []string,
) *Service {
	return &Service{
		firebaseAuth:       firebaseAuth,
		toolkit:            toolkit,
		users:              users,
		userLocal:          userLocal,
		mailer:             mailer,
		mailFrom:           mailFrom,
		googleDomains:      append(append([]string{}, defaultGoogleAuthDomains...), extraGoogleDomains...),
		firestoreAvailable: true,
	}
}

// AddBinder registers an aggregate to re-bind on identity changes.
func (s *Service) AddBinder(b Binder) {
	if s == nil || b == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.binders = append(s.binders, b)
}

// SignUp creates an account and signs the new user in.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*userdom.Identity, error) {
	if s == nil || s.firebaseAuth == nil {
		return nil, errors.New("session: auth client is nil")
	}
	s.clearError()

	params := (&fbauth.UserToCreate{}).
		Email(strings.TrimSpace(email)).
		Password(password).
		DisplayName(strings.TrimSpace(displayName))

	rec, err := s.firebaseAuth.CreateUser(ctx, params)
	if err != nil {
		log.Printf("[session] sign up failed email=%s: %v", email, err)
		switch {
		case fbauth.IsEmailAlreadyExists(err):
			s.setError("This email is already in use. Please try another email or sign in.")
		default:
			s.setError("Failed to sign up. Please try again.")
		}
		return nil, err
	}

	id := identityFromRecord(rec)
	s.upsertProfile(ctx, id, true)
	s.setCurrent(ctx, id)
	return id, nil
}

// SignIn verifies email/password credentials via Identity Toolkit and
// establishes the session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*userdom.Identity, error) {
	if s == nil || s.toolkit == nil {
		return nil, errors.New("session: identity toolkit client is nil")
	}
	s.clearError()

	res, err := s.toolkit.VerifyPassword(ctx, email, password)
	if err != nil {
		log.Printf("[session] sign in failed email=%s: %v", email, err)
		if errors.Is(err, identitytoolkit.ErrInvalidCredentials) {
			s.setError("Invalid email or password. Please try again.")
		} else {
			s.setError("Failed to sign in. Please try again.")
		}
		return nil, err
	}

	id := &userdom.Identity{UID: res.UID, Email: res.Email}
	if s.firebaseAuth != nil {
		if rec, gerr := s.firebaseAuth.GetUser(ctx, res.UID); gerr == nil {
			id = identityFromRecord(rec)
		}
	}

	s.upsertProfile(ctx, id, false)
	s.setCurrent(ctx, id)
	return id, nil
}

// IsGoogleAuthAvailable reports whether popup sign-in works on hostname.
func (s *Service) IsGoogleAuthAvailable(hostname string) bool {
	if s == nil {
		return false
	}
	hostname = strings.TrimSpace(hostname)
	for _, d := range s.googleDomains {
		if strings.EqualFold(d, hostname) {
			return true
		}
	}
	return false
}

// SignInWithGoogle accepts the ID token produced by the popup flow,
// gated by the hostname allow-list.
func (s *Service) SignInWithGoogle(ctx context.Context, hostname, idToken string) (*userdom.Identity, error) {
	if s == nil || s.firebaseAuth == nil {
		return nil, errors.New("session: auth client is nil")
	}
	s.clearError()

	if !s.IsGoogleAuthAvailable(hostname) {
		s.setError("Google sign-in is not available in this environment. Please use email/password sign-in instead.")
		return nil, errors.New("session: google sign-in not available for host " + hostname)
	}

	token, err := s.firebaseAuth.VerifyIDToken(ctx, strings.TrimSpace(idToken))
	if err != nil {
		log.Printf("[session] google sign in failed: %v", err)
		s.setError("Failed to sign in with Google. Please try again.")
		return nil, err
	}

	id := &userdom.Identity{UID: token.UID}
	if rec, gerr := s.firebaseAuth.GetUser(ctx, token.UID); gerr == nil {
		id = identityFromRecord(rec)
	}

	s.upsertProfile(ctx, id, false)
	s.setCurrent(ctx, id)
	return id, nil
}

// SignOut drops the current identity; aggregates re-bind as guest.
func (s *Service) SignOut(ctx context.Context) {
	if s == nil {
		return
	}
	s.clearError()
	s.setCurrent(ctx, nil)
}

// ResetPassword generates a reset link and emails it to the user.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	if s == nil || s.firebaseAuth == nil {
		return errors.New("session: auth client is nil")
	}
	s.clearError()

	email = strings.TrimSpace(email)
	link, err := s.firebaseAuth.PasswordResetLink(ctx, email)
	if err != nil {
		log.Printf("[session] password reset link failed email=%s: %v", email, err)
		if fbauth.IsUserNotFound(err) {
			s.setError("No account found with this email address.")
		} else {
			s.setError("Failed to send password reset email. Please try again.")
		}
		return err
	}

	if s.mailer == nil {
		log.Printf("[session] no mailer configured; reset link not delivered email=%s", email)
		return nil
	}

	body := "We received a request to reset your password.\n\nReset it here: " + link +
		"\n\nIf you did not request this, you can ignore this email."
	if err := s.mailer.Send(ctx, s.mailFrom, email, "Reset your Sunshine Saree password", body); err != nil {
		log.Printf("[session] password reset mail failed email=%s: %v", email, err)
		s.setError("Failed to send password reset email. Please try again.")
		return err
	}
	return nil
}

// Attach establishes the identity for the current request: a verified
// bearer identity or nil for guest. Used by the HTTP middleware; a
// repeated attach with the same uid is a no-op.
func (s *Service) Attach(ctx context.Context, id *userdom.Identity) {
	if s == nil {
		return
	}
	s.mu.Lock()
	same := uidOf(s.current) == uidOf(id)
	s.mu.Unlock()
	if same {
		// still re-bind so aggregates load on first guest request
		s.bindAll(ctx, uidOf(id))
		return
	}
	if id != nil {
		s.upsertProfile(ctx, id, false)
	}
	s.setCurrent(ctx, id)
}

// Current returns the signed-in identity, or nil for guest usage.
func (s *Service) Current() *userdom.Identity {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// LastError returns the last human-readable auth failure, or "".
func (s *Service) LastError() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// ----------------------------
// Internals
// ----------------------------

func (s *Service) setCurrent(ctx context.Context, id *userdom.Identity) {
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
	s.bindAll(ctx, uidOf(id))
}

func (s *Service) bindAll(ctx context.Context, uid string) {
	s.mu.Lock()
	binders := append([]Binder{}, s.binders...)
	s.mu.Unlock()
	for _, b := range binders {
		b.Bind(ctx, uid)
	}
}

// upsertProfile mirrors the identity into users/{uid}; on Firestore
// failure it disables further attempts and falls back to the local
// snapshot so the profile is not lost.
func (s *Service) upsertProfile(ctx context.Context, id *userdom.Identity, created bool) {
	if id == nil || id.UID == "" || s.users == nil {
		return
	}

	p := userdom.Profile{
		DisplayName: id.DisplayName,
		Email:       id.Email,
		PhotoURL:    id.PhotoURL,
	}
	if created {
		p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	s.mu.Lock()
	available := s.firestoreAvailable
	s.mu.Unlock()

	if available {
		err := s.users.Upsert(ctx, id.UID, p)
		if err == nil {
			return
		}
		log.Printf("[session] profile upsert failed uid=%s: %v", id.UID, err)
		s.mu.Lock()
		s.firestoreAvailable = false
		s.mu.Unlock()
	}

	if s.userLocal != nil {
		if err := s.userLocal.Save(id.UID, p); err != nil {
			log.Printf("[session] local profile save failed uid=%s: %v", id.UID, err)
		}
	}
}

func (s *Service) setError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

func (s *Service) clearError() {
	s.setError("")
}

func identityFromRecord(rec *fbauth.UserRecord) *userdom.Identity {
	if rec == nil || rec.UserInfo == nil {
		return nil
	}
	return &userdom.Identity{
		UID:         rec.UID,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
		PhotoURL:    rec.PhotoURL,
	}
}

func uidOf(id *userdom.Identity) string {
	if id == nil {
		return ""
	}
	return id.UID
}
