// Package random generates cryptographically secure random identifiers and
// the verification nonces used by key upload/removal email round-trips.
package random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// DefaultByteCount is the number of random bytes used when callers do not
// need a specific length (128 bits).
const DefaultByteCount = 16

// Hex returns n cryptographically secure random bytes encoded as lowercase
// hexadecimal. The result is always exactly 2*n characters. Bytes come from
// the operating system's CSPRNG; if that source is unavailable the error is
// returned as-is, never a weaker value.
func Hex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Nonce returns a random hex string of the default length.
func Nonce() (string, error) {
	return Hex(DefaultByteCount)
}
