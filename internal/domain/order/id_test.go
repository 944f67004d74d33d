// internal/domain/order/id_test.go
package order

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDFormat(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	id := NewID(now)

	ts := strconv.FormatInt(now.UnixMilli(), 36)

	// timestamp prefix + 5 random base36 chars, uppercased
	require.Len(t, id, len(ts)+5)
	assert.Equal(t, strings.ToUpper(ts), id[:len(ts)])
	assert.Equal(t, strings.ToUpper(id), id)

	// decodes back to the millisecond timestamp
	ms, err := strconv.ParseInt(strings.ToLower(id[:len(ts)]), 36, 64)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), ms)
}

func TestNewIDVaries(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewID(now)] = true
	}
	// 5 random chars over base36: collisions across 50 draws are effectively impossible
	assert.Greater(t, len(seen), 1)
}

func TestDisplayID(t *testing.T) {
	assert.Equal(t, "SUN-MBX9K2", DisplayID("mbx9k2abcde"))
	assert.Equal(t, "SUN-MBX9K2", DisplayID("MBX9K2ABCDE"))
	assert.Equal(t, "SUN-ABC", DisplayID("abc"))
	assert.Equal(t, "SUN-", DisplayID(""))
	assert.Equal(t, "SUN-ABCDEF", DisplayID("  abcdefgh  "))
}

func TestDisplayIDDeterministic(t *testing.T) {
	raw := NewID(time.Now())
	assert.Equal(t, DisplayID(raw), DisplayID(raw))
}
