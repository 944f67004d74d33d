// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"

	userdom "sunshinesaree/internal/domain/user"
)

// UserRepositoryFS implements user.Repository using Firestore.
//
// Collection design:
// - collection: users
// - docId: uid
// - fields: displayName, email, photoURL, createdAt, lastLogin
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

// Exists reports whether users/{uid} is present.
func (r *UserRepositoryFS) Exists(ctx context.Context, uid string) (bool, error) {
	if r == nil || r.Client == nil {
		return false, errors.New("user_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(uid)
	if id == "" {
		return false, errors.New("user_repository_fs: uid is empty")
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return snap.Exists(), nil
}

// Upsert merge-writes the profile and refreshes lastLogin.
func (r *UserRepositoryFS) Upsert(ctx context.Context, uid string, p userdom.Profile) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(uid)
	if id == "" {
		return errors.New("user_repository_fs: uid is empty")
	}

	fields := map[string]any{
		"displayName": p.DisplayName,
		"email":       p.Email,
		"photoURL":    p.PhotoURL,
		"lastLogin":   firestore.ServerTimestamp,
	}
	if strings.TrimSpace(p.CreatedAt) != "" {
		fields["createdAt"] = p.CreatedAt
	}

	_, err := r.col().Doc(id).Set(ctx, fields, firestore.MergeAll)
	return err
}
