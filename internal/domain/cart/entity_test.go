// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunshinesaree/internal/domain/product"
)

func intp(v int) *int { return &v }

func saree() product.Summary {
	return product.Summary{
		ID:        1,
		Name:      "Elegant Green Silk Saree with Gold Border",
		Price:     1999,
		SalePrice: intp(999),
		Image:     "/images/green-silk-saree.png",
	}
}

func cotton() product.Summary {
	return product.Summary{
		ID:    3,
		Name:  "Handloom Cotton Saree",
		Price: 1499,
	}
}

func TestNewDropsInvalidEntries(t *testing.T) {
	c := New([]LineItem{
		{Summary: saree(), Quantity: 2},
		{Summary: cotton(), Quantity: 0},
		{Summary: cotton(), Quantity: -3},
	})

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].ID)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestNewFoldsDuplicateProductIDs(t *testing.T) {
	c := New([]LineItem{
		{Summary: saree(), Quantity: 1},
		{Summary: saree(), Quantity: 2},
	})

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestAddIncrementsExistingLine(t *testing.T) {
	c := New(nil)

	require.NoError(t, c.Add(saree()))
	require.NoError(t, c.Add(saree()))
	require.NoError(t, c.Add(cotton()))

	require.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
	assert.Equal(t, 3, c.TotalItems())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add(saree()))

	require.NoError(t, c.SetQuantity(1, 5))
	assert.Equal(t, 5, c.Items[0].Quantity)

	require.NoError(t, c.SetQuantity(1, 0))
	assert.True(t, c.IsEmpty())
}

func TestSetQuantityUnknownProductIsNoop(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add(saree()))

	require.NoError(t, c.SetQuantity(42, 7))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestSubtotalUsesEffectivePrice(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add(saree()))
	require.NoError(t, c.SetQuantity(1, 2))

	// sale price 999 * qty 2, not the base 1999
	assert.Equal(t, 1998, c.Subtotal())

	require.NoError(t, c.Add(cotton()))
	assert.Equal(t, 1998+1499, c.Subtotal())
}

func TestRemoveAbsentProductIsNoop(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add(saree()))

	require.NoError(t, c.Remove(99))
	require.Len(t, c.Items, 1)

	require.NoError(t, c.Remove(1))
	assert.True(t, c.IsEmpty())
}

func TestSnapshotIsACopy(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add(saree()))

	snap := c.Snapshot()
	snap[0].Quantity = 99

	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestClear(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add(saree()))
	require.NoError(t, c.Add(cotton()))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0, c.Subtotal())
}
