// internal/domain/order/id.go
package order

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// BrandPrefix tags every human-facing order id.
const BrandPrefix = "SUN"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates a client-side order id: the base-36 millisecond
// timestamp followed by 5 random base-36 characters, uppercased.
// Collision probability is treated as negligible; there is no
// server-side uniqueness check.
func NewID(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)

	var b strings.Builder
	b.WriteString(ts)
	for i := 0; i < 5; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return strings.ToUpper(b.String())
}

// DisplayID is the short human-facing rendering of a raw order id:
// the brand prefix plus the first 6 characters, uppercased. Deterministic
// and one-way; applied identically wherever an order id is shown.
func DisplayID(rawID string) string {
	id := strings.TrimSpace(rawID)
	if len(id) > 6 {
		id = id[:6]
	}
	return BrandPrefix + "-" + strings.ToUpper(id)
}
