package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// tokenLen is the number of random bytes behind every token (256 bits).
const tokenLen = 32

type randomTokenGenerator struct {
	random io.Reader
}

// NewTokenGenerator constructs a [TokenGenerator] reading from crypto/rand.
func NewTokenGenerator() TokenGenerator {
	return &randomTokenGenerator{random: rand.Reader}
}

// Generate implements [TokenGenerator].
func (g *randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, tokenLen)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return hex.EncodeToString(buf), nil
}
