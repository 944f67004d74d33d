// internal/domain/order/entity_test.go
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeAmounts(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int
		want     Amounts
	}{
		{
			name:     "above free shipping threshold",
			subtotal: 1998,
			want:     Amounts{Subtotal: 1998, Shipping: 0, Tax: 360, Total: 2358},
		},
		{
			name:     "exactly at threshold ships free",
			subtotal: 999,
			want:     Amounts{Subtotal: 999, Shipping: 0, Tax: 180, Total: 1179},
		},
		{
			name:     "below threshold pays flat fee",
			subtotal: 998,
			want:     Amounts{Subtotal: 998, Shipping: 99, Tax: 180, Total: 1277},
		},
		{
			name:     "small order",
			subtotal: 100,
			want:     Amounts{Subtotal: 100, Shipping: 99, Tax: 18, Total: 217},
		},
		{
			name:     "tax rounds to nearest unit",
			subtotal: 1499,
			want:     Amounts{Subtotal: 1499, Shipping: 0, Tax: 270, Total: 1769},
		},
		{
			name:     "zero subtotal",
			subtotal: 0,
			want:     Amounts{Subtotal: 0, Shipping: 99, Tax: 0, Total: 99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeAmounts(tt.subtotal))
		})
	}
}

func validOrder() *Order {
	return &Order{
		ID: "MBX9K2ABCDE",
		Items: []ItemSnapshot{
			{ProductID: 1, Name: "Elegant Green Silk Saree", Price: 999, OriginalPrice: 1999, Quantity: 2},
		},
		Amounts:   ComputeAmounts(1998),
		Status:    StatusPlaced,
		CreatedAt: time.Now(),
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validOrder().Validate())

	o := validOrder()
	o.ID = "  "
	assert.ErrorIs(t, o.Validate(), ErrInvalidID)

	o = validOrder()
	o.Items = nil
	assert.ErrorIs(t, o.Validate(), ErrNoItems)

	o = validOrder()
	o.Amounts.Total++
	assert.ErrorIs(t, o.Validate(), ErrAmountMismatch)

	var nilOrder *Order
	assert.ErrorIs(t, nilOrder.Validate(), ErrInvalidID)
}
