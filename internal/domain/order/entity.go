// internal/domain/order/entity.go
package order

import (
	"errors"
	"math"
	"strings"
	"time"
)

// ========================================
// Policy (fixed, not configurable)
// ========================================

const (
	// FreeShippingThreshold: orders at or above this subtotal ship free.
	FreeShippingThreshold = 999
	// FlatShippingFee applies below the threshold.
	FlatShippingFee = 99
	// TaxRate applied to the subtotal, rounded to the nearest whole unit.
	TaxRate = 0.18
)

// Payment method / status / order status tags.
const (
	PaymentMethodCard = "credit-card"
	PaymentMethodCOD  = "cod"

	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"

	StatusPlaced = "placed"
)

// ========================================
// Errors
// ========================================

var (
	ErrInvalidID      = errors.New("order: invalid id")
	ErrNoItems        = errors.New("order: no items")
	ErrAmountMismatch = errors.New("order: total != subtotal + shipping + tax")
)

// ========================================
// Blocks stored inside Order
// ========================================

type Customer struct {
	FirstName string  `json:"firstName" firestore:"firstName"`
	LastName  string  `json:"lastName" firestore:"lastName"`
	Email     string  `json:"email" firestore:"email"`
	Phone     string  `json:"phone" firestore:"phone"`
	UserID    *string `json:"userId" firestore:"userId"`
}

type ShippingAddress struct {
	Address string `json:"address" firestore:"address"`
	City    string `json:"city" firestore:"city"`
	State   string `json:"state" firestore:"state"`
	Pincode string `json:"pincode" firestore:"pincode"`
}

// ItemSnapshot freezes a cart line into the order. Price is the effective
// (sale-adjusted) unit price at checkout time; OriginalPrice is the base
// price. Decoupled from the live catalog so later catalog changes do not
// alter historical orders.
type ItemSnapshot struct {
	ProductID     int    `json:"id" firestore:"id"`
	Name          string `json:"name" firestore:"name"`
	Price         int    `json:"price" firestore:"price"`
	OriginalPrice int    `json:"originalPrice" firestore:"originalPrice"`
	Quantity      int    `json:"quantity" firestore:"quantity"`
	Image         string `json:"image" firestore:"image"`
}

// Payment describes how the order is paid. CardLastFour is present only
// for card payments where a card number was entered; it is omitted from
// persisted documents otherwise.
type Payment struct {
	Method       string `json:"method" firestore:"method"`
	Status       string `json:"status" firestore:"status"`
	CardLastFour string `json:"cardLastFour,omitempty" firestore:"cardLastFour,omitempty"`
}

// Amounts are computed once at checkout and frozen into the record.
type Amounts struct {
	Subtotal int `json:"subtotal" firestore:"subtotal"`
	Shipping int `json:"shipping" firestore:"shipping"`
	Tax      int `json:"tax" firestore:"tax"`
	Total    int `json:"total" firestore:"total"`
}

// ========================================
// Entity
// ========================================

// Order is created once at checkout submission and never mutated by this
// system thereafter.
type Order struct {
	ID              string          `json:"id" firestore:"-"`
	Customer        Customer        `json:"customer" firestore:"customer"`
	ShippingAddress ShippingAddress `json:"shippingAddress" firestore:"shippingAddress"`
	Items           []ItemSnapshot  `json:"items" firestore:"items"`
	Payment         Payment         `json:"payment" firestore:"payment"`
	Amounts         Amounts         `json:"amounts" firestore:"amounts"`
	Notes           string          `json:"notes" firestore:"notes"`
	Status          string          `json:"status" firestore:"status"`
	CreatedAt       time.Time       `json:"createdAt" firestore:"createdAt"`
}

// ComputeAmounts derives shipping, tax and total from the subtotal using
// the fixed pricing policy.
func ComputeAmounts(subtotal int) Amounts {
	shipping := FlatShippingFee
	if subtotal >= FreeShippingThreshold {
		shipping = 0
	}
	tax := int(math.Round(float64(subtotal) * TaxRate))
	return Amounts{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Validate checks the creation-time invariants.
func (o *Order) Validate() error {
	if o == nil || strings.TrimSpace(o.ID) == "" {
		return ErrInvalidID
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	a := o.Amounts
	if a.Total != a.Subtotal+a.Shipping+a.Tax {
		return ErrAmountMismatch
	}
	return nil
}
