// internal/application/catalog/service_test.go
package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTracker struct {
	calls []string
	err   error
}

func (m *mockTracker) Track(ctx context.Context, userID string, productID int, productName, productImage, action string) error {
	if m.err != nil {
		return m.err
	}
	m.calls = append(m.calls, action)
	return nil
}

type prefixResolver struct{}

func (prefixResolver) PublicURL(object string) string {
	return "https://cdn.example.com" + object
}

func TestListAllAndByCategory(t *testing.T) {
	svc := NewService(nil, nil)

	all := svc.List("all")
	assert.Len(t, all, len(seedProducts))
	assert.Len(t, svc.List(""), len(seedProducts))

	silk := svc.List("silk")
	require.NotEmpty(t, silk)
	for _, p := range silk {
		assert.Equal(t, "silk", p.Category)
	}

	assert.Empty(t, svc.List("shoes"))
}

func TestSearch(t *testing.T) {
	svc := NewService(nil, nil)

	hits := svc.Search("kanjivaram")
	require.Len(t, hits, 1)
	assert.Equal(t, 2, hits[0].ID)

	// description text matches too
	hits = svc.Search("daily wear")
	require.Len(t, hits, 1)
	assert.Equal(t, 3, hits[0].ID)

	assert.Len(t, svc.Search(""), len(seedProducts))
	assert.Empty(t, svc.Search("zzzzz"))
}

func TestGetByID(t *testing.T) {
	svc := NewService(nil, nil)

	p, err := svc.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Elegant Green Silk Saree with Gold Border", p.Name)
	require.NotNil(t, p.SalePrice)
	assert.Equal(t, 999, *p.SalePrice)
	assert.Equal(t, 999, p.EffectivePrice())

	_, err = svc.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestImageResolution(t *testing.T) {
	svc := NewService(nil, prefixResolver{})

	p, err := svc.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/green-silk-saree.png", p.Image)

	// seed data itself stays untouched
	assert.Equal(t, "/images/green-silk-saree.png", seedProducts[0].Image)
}

func TestTrackAction(t *testing.T) {
	tracker := &mockTracker{}
	svc := NewService(tracker, nil)

	svc.TrackAction(context.Background(), "uid-1", 1, "view")
	assert.Equal(t, []string{"view"}, tracker.calls)

	// guests are skipped
	svc.TrackAction(context.Background(), "", 1, "view")
	assert.Len(t, tracker.calls, 1)

	// unknown products are skipped
	svc.TrackAction(context.Background(), "uid-1", 42, "view")
	assert.Len(t, tracker.calls, 1)

	// tracker failure is swallowed
	tracker.err = errors.New("unavailable")
	svc.TrackAction(context.Background(), "uid-1", 1, "addToCart")
	assert.Len(t, tracker.calls, 1)
}
