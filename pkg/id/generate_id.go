package id

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewNumericID returns a 10-digit numeric identifier, used for public
// customer-facing ids (leading zeros allowed).
func NewNumericID() string {
	digits := make([]byte, 10)
	for i := range digits {
		n, _ := rand.Int(rand.Reader, big.NewInt(10))
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits)
}
