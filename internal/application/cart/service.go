// internal/application/cart/service.go
package cart

import (
	"context"
	"log"
	"sync"

	cartdom "sunshinesaree/internal/domain/cart"
	"sunshinesaree/internal/domain/product"
)

// Service is the session-scoped cart aggregate. The in-memory state is the
// source of truth while the session lives; the local snapshot and the
// per-user Firestore document are replicas, flushed on every mutation.
//
// Replica failures never surface to callers: the local snapshot is the
// durability guarantee of last resort, and a failed Firestore call marks
// the remote replica unreachable for the rest of the process lifetime
// (reset only by restart, the "full reload" analog). Concurrent edits to
// the same user's cart from another client are not reconciled; last
// writer wins.
type Service struct {
	mu sync.Mutex

	state  *cartdom.Cart
	userID string // empty = guest
	loaded bool

	remote cartdom.Repository
	local  cartdom.SnapshotStore

	remoteAvailable bool
}

func NewService(remote cartdom.Repository, local cartdom.SnapshotStore) *Service {
	return &Service{
		state:           cartdom.New(nil),
		remote:          remote,
		local:           local,
		remoteAvailable: true,
	}
}

// Bind sets the session identity (empty for guest) and runs the
// reconciliation protocol. Re-binding the same identity is a no-op after
// the first load.
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

// reconcile adopts the local snapshot first, then lets the remote document
// overwrite it when the user is signed in and the remote store is still
// believed reachable. Remote wins over local when both are available.
// Caller holds s.mu.
func (s *Service) reconcile(ctx context.Context) {
	s.state = cartdom.New(nil)

	items, ok, err := s.local.Load()
	if err != nil {
		log.Printf("[cart] parse local snapshot failed: %v", err)
	} else if ok {
		s.state = cartdom.New(items)
	}

	if s.userID == "" || !s.remoteAvailable {
		return
	}

	remote, err := s.remote.GetByUserID(ctx, s.userID)
	if err != nil {
		log.Printf("[cart] load from firestore failed uid=%s: %v", s.userID, err)
		s.remoteAvailable = false
		return
	}
	if remote != nil {
		s.state = remote
	}
}

// AddItem increments the quantity for the product by 1, inserting a line
// with quantity 1 when absent.
func (s *Service) AddItem(ctx context.Context, p product.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.state.Add(p)
	s.flush(ctx)
}

// RemoveItem deletes the line for the product id; no-op if absent.
func (s *Service) RemoveItem(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.state.Remove(productID)
	s.flush(ctx)
}

// UpdateQuantity sets the quantity directly; <= 0 removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.state.SetQuantity(productID, quantity)
	s.flush(ctx)
}

// Clear empties the cart, removes the local snapshot and best-effort
// clears the remote replica.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Clear()

	if err := s.local.Remove(); err != nil {
		log.Printf("[cart] remove local snapshot failed: %v", err)
	}

	if s.userID != "" && s.remoteAvailable {
		if err := s.remote.SaveItems(ctx, s.userID, []cartdom.LineItem{}); err != nil {
			log.Printf("[cart] clear in firestore failed uid=%s: %v", s.userID, err)
			s.remoteAvailable = false
		}
	}
}

// flush writes the full item list to both replicas: local always, remote
// when signed in, reachable and non-empty. Caller holds s.mu.
func (s *Service) flush(ctx context.Context) {
	items := s.state.Snapshot()

	if err := s.local.Save(items); err != nil {
		log.Printf("[cart] save local snapshot failed: %v", err)
	}

	if s.userID == "" || !s.remoteAvailable || len(items) == 0 {
		return
	}
	if err := s.remote.SaveItems(ctx, s.userID, items); err != nil {
		log.Printf("[cart] save to firestore failed uid=%s: %v", s.userID, err)
		s.remoteAvailable = false
	}
}

// Items returns a copy of the current line items.
func (s *Service) Items() []cartdom.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// TotalItems is the sum of quantities.
func (s *Service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalItems()
}

// Subtotal is the sum of effective price * quantity.
func (s *Service) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Subtotal()
}

// IsEmpty reports whether the cart has no lines.
func (s *Service) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsEmpty()
}

// RemoteAvailable reports whether Firestore is still being attempted.
func (s *Service) RemoteAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteAvailable
}
