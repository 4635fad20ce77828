// Package strongsig offers an optional high-assurance block signature
// for SignatureRegistry callers who need stronger collision resistance
// across many cross-chunk signatures than the pipeline's 64-bit FNV-1a
// provides. It is never used inside the compression pipeline itself,
// which must stay FNV-1a to match the documented test vectors.
package strongsig

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Of returns the hex-encoded blake2b-256 digest of block, suitable as a
// SignatureRegistry key for long-lived streaming sessions.
func Of(block []byte) string {
	sum := blake2b.Sum256(block)
	return hex.EncodeToString(sum[:])
}
