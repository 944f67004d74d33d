// internal/application/orderview/query_test.go
package orderview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdom "sunshinesaree/internal/domain/order"
	userdom "sunshinesaree/internal/domain/user"
)

type mockRepo struct {
	order *orderdom.Order
	err   error
}

func (m *mockRepo) Create(ctx context.Context, o *orderdom.Order) (string, error) {
	return "", errors.New("not implemented")
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*orderdom.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

type mockArchive struct {
	order *orderdom.Order
	err   error
}

func (m *mockArchive) Append(id string, o *orderdom.Order) error { return nil }

func (m *mockArchive) FindByID(id string) (*orderdom.Order, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	if m.order == nil {
		return nil, false, nil
	}
	return m.order, true, nil
}

func sampleOrder(id string) *orderdom.Order {
	return &orderdom.Order{
		ID: id,
		Customer: orderdom.Customer{
			FirstName: "Priya", LastName: "Sharma", Email: "priya@example.com", Phone: "9876543210",
		},
		Items: []orderdom.ItemSnapshot{
			{ProductID: 1, Name: "Elegant Green Silk Saree", Price: 999, OriginalPrice: 1999, Quantity: 2},
		},
		Amounts:   orderdom.ComputeAmounts(1998),
		Status:    orderdom.StatusPlaced,
		CreatedAt: time.Now(),
	}
}

func TestGetByIDMissingID(t *testing.T) {
	q := &Query{Orders: &mockRepo{}, Archive: &mockArchive{}}

	_, err := q.GetByID(context.Background(), "   ", nil)

	assert.ErrorIs(t, err, ErrMissingID)
}

func TestGetByIDRemoteHit(t *testing.T) {
	q := &Query{
		Orders:  &mockRepo{order: sampleOrder("fs-doc-1")},
		Archive: &mockArchive{},
	}

	v, err := q.GetByID(context.Background(), "fs-doc-1", nil)

	require.NoError(t, err)
	assert.Equal(t, SourceRemote, v.Source)
	assert.Equal(t, "fs-doc-1", v.Order.ID)
	assert.Equal(t, orderdom.DisplayID("fs-doc-1"), v.DisplayID)
}

func TestGetByIDFallsBackToArchive(t *testing.T) {
	q := &Query{
		Orders:  &mockRepo{order: nil},
		Archive: &mockArchive{order: sampleOrder("MBX9K2ABCDE")},
	}

	v, err := q.GetByID(context.Background(), "MBX9K2ABCDE", nil)

	require.NoError(t, err)
	assert.Equal(t, SourceLocal, v.Source)
	assert.Equal(t, "MBX9K2ABCDE", v.Order.ID)
}

func TestGetByIDRemoteErrorStillResolves(t *testing.T) {
	q := &Query{
		Orders:  &mockRepo{err: errors.New("unavailable")},
		Archive: &mockArchive{order: sampleOrder("MBX9K2ABCDE")},
	}

	v, err := q.GetByID(context.Background(), "MBX9K2ABCDE", nil)

	require.NoError(t, err)
	assert.Equal(t, SourceLocal, v.Source)
}

func TestGetByIDPlaceholder(t *testing.T) {
	q := &Query{Orders: &mockRepo{}, Archive: &mockArchive{}}

	v, err := q.GetByID(context.Background(), "LOSTORDER1", nil)

	require.NoError(t, err)
	assert.Equal(t, SourcePlaceholder, v.Source)

	o := v.Order
	assert.Equal(t, "LOSTORDER1", o.ID)
	assert.Equal(t, "Valued", o.Customer.FirstName)
	assert.Equal(t, "Customer", o.Customer.LastName)
	assert.Equal(t, "customer@example.com", o.Customer.Email)
	assert.Equal(t, "Mumbai", o.ShippingAddress.City)
	assert.Equal(t, "3456", o.Payment.CardLastFour)
	assert.Equal(t, orderdom.PaymentStatusProcessing, o.Payment.Status)
	assert.Equal(t, orderdom.StatusPlaced, o.Status)

	// the giveaway signature of a placeholder: no items, zeroed amounts
	assert.Empty(t, o.Items)
	assert.Equal(t, orderdom.Amounts{}, o.Amounts)
}

func TestGetByIDPlaceholderUsesIdentityEmail(t *testing.T) {
	q := &Query{Orders: &mockRepo{}, Archive: &mockArchive{}}

	v, err := q.GetByID(context.Background(), "LOSTORDER1", &userdom.Identity{
		UID:   "uid-1",
		Email: "priya@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", v.Order.Customer.Email)
}
