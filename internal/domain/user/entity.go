// internal/domain/user/entity.go
package user

import (
	"context"
	"time"
)

// Identity is the currently authenticated user, or nil for guest usage.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// Profile is the per-user document kept in the users collection.
type Profile struct {
	DisplayName string    `json:"displayName" firestore:"displayName"`
	Email       string    `json:"email" firestore:"email"`
	PhotoURL    string    `json:"photoURL" firestore:"photoURL"`
	CreatedAt   string    `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	LastLogin   time.Time `json:"lastLogin" firestore:"lastLogin"`
}

// Repository is the remote profile port (users/{uid}).
type Repository interface {
	// Exists reports whether a profile document is present.
	Exists(ctx context.Context, uid string) (bool, error)

	// Upsert merge-writes the profile fields and refreshes lastLogin.
	Upsert(ctx context.Context, uid string, p Profile) error
}

// SnapshotStore is the local fallback for profile data, keyed per user
// plus a shared "last signed-in user" key.
type SnapshotStore interface {
	Save(uid string, p Profile) error
}
