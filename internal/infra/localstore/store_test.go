// internal/infra/localstore/store_test.go
package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestNewRejectsEmptyDir(t *testing.T) {
	_, err := New("  ")
	assert.Error(t, err)
}

func TestGetMissingKey(t *testing.T) {
	s := newStore(t)

	_, ok, err := s.Get("cart")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetGetRemove(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Set("cart", []byte(`[{"id":1}]`)))

	b, ok, err := s.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(b))

	require.NoError(t, s.Remove("cart"))
	_, ok, err = s.Get("cart")
	require.NoError(t, err)
	assert.False(t, ok)

	// removing again is not an error
	assert.NoError(t, s.Remove("cart"))
}

func TestJSONRoundtrip(t *testing.T) {
	s := newStore(t)

	type row struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	require.NoError(t, s.SetJSON("wishlist", []row{{ID: 2, Name: "Kanjivaram Silk Saree"}}))

	var got []row
	ok, err := s.GetJSON("wishlist", &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestGetJSONMalformedValue(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Set("cart", []byte("{not json")))

	var v any
	ok, err := s.GetJSON("cart", &v)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestPathRejectsSeparators(t *testing.T) {
	s := newStore(t)

	assert.Error(t, s.Set("../escape", []byte("x")))
	assert.Error(t, s.Set("a/b", []byte("x")))
	assert.Error(t, s.Set("", []byte("x")))
}

func TestSetIsAtomicOnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("cart", []byte("[]")))

	// no tmp file left behind
	_, err = os.Stat(filepath.Join(dir, "cart.json.tmp"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dir, "cart.json"))
	assert.NoError(t, err)
}
