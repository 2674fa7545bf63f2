package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"nodekey/internal/domain"
)

// Fingerprint is the short form of a node public key shown by the
// fingerprint command: the first 10 bytes of its SHA-256 digest in hex.
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := sha256.Sum256(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
