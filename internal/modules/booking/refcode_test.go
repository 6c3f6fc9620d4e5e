package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingRef_Format(t *testing.T) {
	ref, err := NewBookingRef()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "BK-"))
	assert.Len(t, ref, len(refPrefix)+refLength)
	for _, ch := range ref[len(refPrefix):] {
		assert.Contains(t, refAlphabet, string(ch))
	}
}

func TestNewBookingRef_NoImmediateRepeats(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref, err := NewBookingRef()
		require.NoError(t, err)
		assert.False(t, seen[ref], "duplicate reference %s after %d draws", ref, i)
		seen[ref] = true
	}
}
