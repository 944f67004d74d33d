// internal/domain/wishlist/entity_test.go
package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunshinesaree/internal/domain/product"
)

func silk() product.Summary {
	return product.Summary{ID: 2, Name: "Kanjivaram Silk Saree", Price: 1899}
}

func TestAddIsIdempotent(t *testing.T) {
	w := New(nil)

	require.NoError(t, w.Add(silk()))
	require.NoError(t, w.Add(silk()))

	assert.Len(t, w.Items, 1)
	assert.True(t, w.Contains(2))
}

func TestNewDropsDuplicates(t *testing.T) {
	w := New([]Entry{
		{Summary: silk()},
		{Summary: silk()},
	})

	assert.Len(t, w.Items, 1)
}

func TestRemove(t *testing.T) {
	w := New(nil)
	require.NoError(t, w.Add(silk()))

	require.NoError(t, w.Remove(99)) // absent: no-op
	assert.True(t, w.Contains(2))

	require.NoError(t, w.Remove(2))
	assert.False(t, w.Contains(2))
	assert.Empty(t, w.Items)
}

func TestSnapshotIsACopy(t *testing.T) {
	w := New(nil)
	require.NoError(t, w.Add(silk()))

	snap := w.Snapshot()
	snap[0].Name = "changed"

	assert.Equal(t, "Kanjivaram Silk Saree", w.Items[0].Name)
}

func TestClear(t *testing.T) {
	w := New(nil)
	require.NoError(t, w.Add(silk()))

	w.Clear()

	assert.Empty(t, w.Items)
	assert.False(t, w.Contains(2))
}
