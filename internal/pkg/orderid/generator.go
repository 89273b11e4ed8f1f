package orderid

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// Length is the fixed size of every generated order identifier.
const Length = 20

const randomBytes = 10

// Generator produces unique, fixed-length, prefixed order identifiers from a
// cryptographically random source. A non-empty prefix shortens the random
// suffix: prefix plus suffix always sum to exactly Length, resolved by
// truncation rather than padding.
type Generator struct {
	prefix string
}

// New creates a Generator with the given identifier prefix.
func New(prefix string) *Generator {
	if len(prefix) > Length {
		prefix = prefix[:Length]
	}
	return &Generator{prefix: prefix}
}

// Generate returns a fresh identifier: the prefix followed by uppercase hex
// of 10 random bytes, truncated to Length characters. Uniqueness is enforced
// by the storage layer, not here.
func (g *Generator) Generate() string {
	buf := make([]byte, randomBytes)
	rand.Read(buf)

	id := g.prefix + strings.ToUpper(hex.EncodeToString(buf))
	if len(id) > Length {
		id = id[:Length]
	}
	return id
}

// Prefix returns the configured identifier prefix.
func (g *Generator) Prefix() string {
	return g.prefix
}
