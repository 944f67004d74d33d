// internal/adapters/out/localstore/user_snapshot.go
package localstore

import (
	"errors"
	"strings"
	"time"

	userdom "sunshinesaree/internal/domain/user"
	"sunshinesaree/internal/infra/localstore"
)

// lastUserDataKey mirrors the web client's shared "last signed-in user"
// backup key; a per-user "user_<uid>" key is written alongside it.
const lastUserDataKey = "sunshinesaree_user_data"

// UserSnapshotLS implements user.SnapshotStore on the file-backed store.
type UserSnapshotLS struct {
	Store *localstore.Store
}

func NewUserSnapshotLS(store *localstore.Store) *UserSnapshotLS {
	return &UserSnapshotLS{Store: store}
}

type userSnapshot struct {
	userdom.Profile
	LastUpdated string `json:"lastUpdated"`
}

// Save writes the profile under both the per-user key and the shared key.
func (s *UserSnapshotLS) Save(uid string, p userdom.Profile) error {
	if s == nil || s.Store == nil {
		return errors.New("user_snapshot_ls: store is nil")
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return errors.New("user_snapshot_ls: uid is empty")
	}

	snap := userSnapshot{
		Profile:     p,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Store.SetJSON("user_"+uid, snap); err != nil {
		return err
	}
	return s.Store.SetJSON(lastUserDataKey, snap)
}
