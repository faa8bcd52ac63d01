package id

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

// NewID32 returns a random entity identifier: 32 lowercase hex characters
// (16 random bytes), the canonical id format for every exposed resource.
func NewID32() string {
	var b [16]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		panic("id: system randomness unavailable: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}
