package random

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
)

// NonceLength is the hex-encoded length of a verification nonce
// (2 * DefaultByteCount).
const NonceLength = 2 * DefaultByteCount

var noncePattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// NonceGenerator generates and validates email verification nonces
type NonceGenerator struct {
	issued prometheus.Counter
}

// NewNonceGenerator creates a new nonce generator. The counter, typically
// observability.Metrics.NoncesIssuedTotal, is incremented on every
// successful Generate; nil disables counting.
func NewNonceGenerator(issued prometheus.Counter) *NonceGenerator {
	return &NonceGenerator{issued: issued}
}

// Generate creates a new verification nonce.
// Returns the nonce ONCE in plaintext (mailed to the key owner) along with
// its SHA256 hash for storage; the plaintext is never persisted.
func (ng *NonceGenerator) Generate() (nonce string, nonceHash string, err error) {
	nonce, err = Nonce()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	if ng.issued != nil {
		ng.issued.Inc()
	}
	return nonce, ng.Hash(nonce), nil
}

// Hash computes the SHA256 hash of a nonce for lookup
func (ng *NonceGenerator) Hash(nonce string) string {
	hash := sha256.Sum256([]byte(nonce))
	return hex.EncodeToString(hash[:])
}

// ValidateFormat checks if a nonce has the correct format
func (ng *NonceGenerator) ValidateFormat(nonce string) error {
	if len(nonce) != NonceLength {
		return fmt.Errorf("nonce must be %d characters, got %d", NonceLength, len(nonce))
	}
	if !noncePattern.MatchString(nonce) {
		return fmt.Errorf("nonce must be lowercase hex")
	}
	return nil
}
