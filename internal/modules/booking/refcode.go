package booking

import (
	"crypto/rand"
	"fmt"
)

const (
	refPrefix   = "BK-"
	refLength   = 8
	refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewBookingRef returns a booking reference like "BK-7QX2M9A4". The suffix
// comes from a cryptographically random source so references cannot be
// enumerated. Uniqueness is enforced by the store, not here; callers retry
// on a duplicate.
func NewBookingRef() (string, error) {
	buf := make([]byte, refLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("booking ref: %w", err)
	}
	for i, b := range buf {
		buf[i] = refAlphabet[int(b)%len(refAlphabet)]
	}
	return refPrefix + string(buf), nil
}
