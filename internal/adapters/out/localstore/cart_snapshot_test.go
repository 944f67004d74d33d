// internal/adapters/out/localstore/cart_snapshot_test.go
package localstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "sunshinesaree/internal/domain/cart"
	"sunshinesaree/internal/domain/product"
	"sunshinesaree/internal/infra/localstore"
)

func newSnapshot(t *testing.T) *CartSnapshotLS {
	t.Helper()
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return NewCartSnapshotLS(store)
}

func TestLoadBeforeAnySave(t *testing.T) {
	s := newSnapshot(t)

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := newSnapshot(t)
	sale := 999

	in := []cartdom.LineItem{
		{
			Summary: product.Summary{
				ID: 1, Name: "Elegant Green Silk Saree", Price: 1999, SalePrice: &sale,
			},
			Quantity: 2,
		},
	}
	require.NoError(t, s.Save(in))

	out, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 2, out[0].Quantity)
	require.NotNil(t, out[0].SalePrice)
	assert.Equal(t, 999, *out[0].SalePrice)
}

func TestSaveNilWritesEmptyList(t *testing.T) {
	s := newSnapshot(t)

	require.NoError(t, s.Save(nil))

	out, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, out)
}

func TestRemoveThenLoad(t *testing.T) {
	s := newSnapshot(t)
	require.NoError(t, s.Save([]cartdom.LineItem{}))

	require.NoError(t, s.Remove())

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadCorruptSnapshotReturnsError(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("cart", []byte("not json")))

	s := NewCartSnapshotLS(store)
	_, ok, err := s.Load()
	assert.False(t, ok)
	assert.Error(t, err)
}
