// internal/application/catalog/service.go
package catalog

import (
	"context"
	"errors"
	"log"
	"strings"

	"sunshinesaree/internal/domain/product"
)

// ViewTracker records product interactions (non-critical writes).
type ViewTracker interface {
	Track(ctx context.Context, userID string, productID int, productName, productImage, action string) error
}

// ImageResolver maps stored image paths to publicly servable URLs.
type ImageResolver interface {
	PublicURL(object string) string
}

// Service serves the built-in catalog: category filtering, free-text
// search, detail lookup and interaction tracking.
type Service struct {
	products []product.Product

	// Tracker and Images may be nil (tracking off, raw image paths).
	Tracker ViewTracker
	Images  ImageResolver
}

func NewService(tracker ViewTracker, images ImageResolver) *Service {
	return &Service{
		products: seedProducts,
		Tracker:  tracker,
		Images:   images,
	}
}

// List returns the products in a category; "" or "all" returns everything.
func (s *Service) List(category string) []product.Product {
	category = strings.ToLower(strings.TrimSpace(category))
	out := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		if category == "" || category == "all" || p.Category == category {
			out = append(out, s.resolve(p))
		}
	}
	return out
}

// Search filters by free-text query over name and description.
func (s *Service) Search(query string) []product.Product {
	out := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.MatchesQuery(query) {
			out = append(out, s.resolve(p))
		}
	}
	return out
}

var ErrNotFound = errors.New("catalog: product not found")

// GetByID returns the product with the given id.
func (s *Service) GetByID(id int) (product.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return s.resolve(p), nil
		}
	}
	return product.Product{}, ErrNotFound
}

// TrackAction records a product interaction for the signed-in user.
// Guests are skipped and failures only logged; browsing never blocks on
// analytics.
func (s *Service) TrackAction(ctx context.Context, userID string, productID int, action string) {
	if s.Tracker == nil || strings.TrimSpace(userID) == "" {
		return
	}
	p, err := s.GetByID(productID)
	if err != nil {
		log.Printf("[catalog] track %s skipped, unknown product id=%d", action, productID)
		return
	}
	if err := s.Tracker.Track(ctx, userID, p.ID, p.Name, p.Image, action); err != nil {
		log.Printf("[catalog] track %s failed product=%d: %v", action, productID, err)
	}
}

func (s *Service) resolve(p product.Product) product.Product {
	if s.Images != nil {
		p.Image = s.Images.PublicURL(p.Image)
	}
	return p
}
