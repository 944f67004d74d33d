// internal/adapters/out/gcs/productImage_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
)

// ProductImageRepositoryGCS resolves catalog image references to public
// HTTPS URLs on the product image bucket, and can verify that an object
// actually exists.
type ProductImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

func NewProductImageRepositoryGCS(client *storage.Client, bucket string) *ProductImageRepositoryGCS {
	return &ProductImageRepositoryGCS{Client: client, Bucket: strings.TrimSpace(bucket)}
}

// PublicURL returns the public HTTPS URL for an image object. References
// that are already absolute URLs pass through unchanged.
func (r *ProductImageRepositoryGCS) PublicURL(object string) string {
	object = strings.TrimSpace(object)
	if object == "" {
		return ""
	}
	if strings.HasPrefix(object, "http://") || strings.HasPrefix(object, "https://") {
		return object
	}
	object = strings.TrimLeft(object, "/")
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", r.Bucket, object)
}

// Exists checks that the image object is present in the bucket.
func (r *ProductImageRepositoryGCS) Exists(ctx context.Context, object string) (bool, error) {
	if r == nil || r.Client == nil {
		return false, errors.New("productImage_repository_gcs: storage client is nil")
	}
	if r.Bucket == "" {
		return false, errors.New("productImage_repository_gcs: bucket is empty")
	}

	object = strings.TrimLeft(strings.TrimSpace(object), "/")
	if object == "" {
		return false, errors.New("productImage_repository_gcs: object is empty")
	}

	_, err := r.Client.Bucket(r.Bucket).Object(object).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
