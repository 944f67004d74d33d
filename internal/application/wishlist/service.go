// internal/application/wishlist/service.go
package wishlist

import (
	"context"
	"log"
	"sync"

	"sunshinesaree/internal/domain/product"
	wishdom "sunshinesaree/internal/domain/wishlist"
)

// Service is the session-scoped wishlist aggregate. Same two-tier replica
// protocol as the cart, minus quantities; unlike the cart, an empty
// wishlist is still written to Firestore.
type Service struct {
	mu sync.Mutex

	state  *wishdom.Wishlist
	userID string
	loaded bool

	remote wishdom.Repository
	local  wishdom.SnapshotStore

	remoteAvailable bool
}

func NewService(remote wishdom.Repository, local wishdom.SnapshotStore) *Service {
	return &Service{
		state:           wishdom.New(nil),
		remote:          remote,
		local:           local,
		remoteAvailable: true,
	}
}

// Bind sets the session identity (empty for guest) and reconciles.
func (s *Service) Bind(ctx context.Context, userID string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded && s.userID == userID {
		return
	}
	s.userID = userID
	s.loaded = true
	s.reconcile(ctx)
}

// Caller holds s.mu.
func (s *Service) reconcile(ctx context.Context) {
	s.state = wishdom.New(nil)

	items, ok, err := s.local.Load()
	if err != nil {
		log.Printf("[wishlist] parse local snapshot failed: %v", err)
	} else if ok {
		s.state = wishdom.New(items)
	}

	if s.userID == "" || !s.remoteAvailable {
		return
	}

	remote, err := s.remote.GetByUserID(ctx, s.userID)
	if err != nil {
		log.Printf("[wishlist] load from firestore failed uid=%s: %v", s.userID, err)
		s.remoteAvailable = false
		return
	}
	if remote != nil {
		s.state = remote
	}
}

// AddItem inserts the product unless already present (set semantics).
func (s *Service) AddItem(ctx context.Context, p product.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.state.Add(p)
	s.flush(ctx)
}

// RemoveItem deletes the entry for the product id; no-op if absent.
func (s *Service) RemoveItem(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.state.Remove(productID)
	s.flush(ctx)
}

// IsInWishlist is the pure membership query.
func (s *Service) IsInWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Contains(productID)
}

// Clear empties the wishlist, removes the local snapshot and best-effort
// clears the remote replica.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Clear()

	if err := s.local.Remove(); err != nil {
		log.Printf("[wishlist] remove local snapshot failed: %v", err)
	}

	if s.userID != "" && s.remoteAvailable {
		if err := s.remote.SaveItems(ctx, s.userID, []wishdom.Entry{}); err != nil {
			log.Printf("[wishlist] clear in firestore failed uid=%s: %v", s.userID, err)
			s.remoteAvailable = false
		}
	}
}

// flush writes to both replicas: local always, remote when signed in and
// reachable (including an empty list). Caller holds s.mu.
func (s *Service) flush(ctx context.Context) {
	items := s.state.Snapshot()

	if err := s.local.Save(items); err != nil {
		log.Printf("[wishlist] save local snapshot failed: %v", err)
	}

	if s.userID == "" || !s.remoteAvailable {
		return
	}
	if err := s.remote.SaveItems(ctx, s.userID, items); err != nil {
		log.Printf("[wishlist] save to firestore failed uid=%s: %v", s.userID, err)
		s.remoteAvailable = false
	}
}

// Items returns a copy of the current entries.
func (s *Service) Items() []wishdom.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// RemoteAvailable reports whether Firestore is still being attempted.
func (s *Service) RemoteAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteAvailable
}
