// internal/adapters/out/firestore/productView_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
)

// ProductViewRepositoryFS records product view/action events.
//
// Collection design:
// - collection: productViews (write-only from this backend)
// - docId: <uid>_<productId>_<unixMillis>
//
// Tracking is non-critical; callers treat failures as log-and-continue.
type ProductViewRepositoryFS struct {
	Client *firestore.Client
}

func NewProductViewRepositoryFS(client *firestore.Client) *ProductViewRepositoryFS {
	return &ProductViewRepositoryFS{Client: client}
}

func (r *ProductViewRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("productViews")
}

// Track writes one action event.
func (r *ProductViewRepositoryFS) Track(ctx context.Context, userID string, productID int, productName, productImage, action string) error {
	if r == nil || r.Client == nil {
		return errors.New("productView_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("productView_repository_fs: userID is empty")
	}

	now := time.Now().UTC()
	docID := fmt.Sprintf("%s_%d_%d", uid, productID, now.UnixMilli())

	_, err := r.col().Doc(docID).Set(ctx, map[string]any{
		"userId":       uid,
		"productId":    productID,
		"productName":  productName,
		"productImage": productImage,
		"action":       action,
		// ISO string rather than a server timestamp, for offline tolerance.
		"viewedAt": now.Format(time.RFC3339),
	}, firestore.MergeAll)
	return err
}
