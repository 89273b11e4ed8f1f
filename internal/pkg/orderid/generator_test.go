package orderid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndPrefix(t *testing.T) {
	gen := New("SSON")

	id := gen.Generate()
	require.Len(t, id, Length)
	assert.Equal(t, "SSON", id[:4])

	for _, r := range id[4:] {
		assert.Contains(t, "0123456789ABCDEF", string(r), "suffix must be uppercase hex")
	}
}

func TestGenerateEmptyPrefix(t *testing.T) {
	gen := New("")

	id := gen.Generate()
	require.Len(t, id, Length)
	for _, r := range id {
		assert.Contains(t, "0123456789ABCDEF", string(r))
	}
}

func TestGenerateUniqueness(t *testing.T) {
	gen := New("SSON")

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.Generate()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGeneratePrefixShortensSuffix(t *testing.T) {
	gen := New("LONGPREFIX")

	id := gen.Generate()
	require.Len(t, id, Length)
	assert.Equal(t, "LONGPREFIX", id[:10])
}

func TestGenerateOversizedPrefixTruncated(t *testing.T) {
	gen := New("PREFIXLONGERTHANTWENTYCHARS")

	id := gen.Generate()
	require.Len(t, id, Length)
	assert.Equal(t, "PREFIXLONGERTHANTWEN", id)
}
