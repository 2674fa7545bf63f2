package crypto

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58/base58"

	"nodekey/internal/domain"
)

// EncodeKey returns the base58 form of key material.
func EncodeKey(b []byte) string { return base58.Encode(b) }

// DecodeKey parses base58 key material.
func DecodeKey(s string) ([]byte, error) { return base58.Decode(s) }

// DecodeKeyPair parses both halves of kp and checks that the secret key
// belongs to the public key.
func DecodeKeyPair(kp domain.KeyPair) (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, err := DecodeKey(kp.Pub)
	if err != nil {
		return nil, nil, fmt.Errorf("decode public key: %w", err)
	}
	if len(pub) != ed25519.PublicKeySize {
		return nil, nil, fmt.Errorf("public key: want %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	sec, err := DecodeKey(kp.Sec)
	if err != nil {
		return nil, nil, fmt.Errorf("decode secret key: %w", err)
	}
	if len(sec) != ed25519.PrivateKeySize {
		return nil, nil, fmt.Errorf("secret key: want %d bytes, got %d", ed25519.PrivateKeySize, len(sec))
	}
	priv := ed25519.PrivateKey(sec)
	if !bytes.Equal(priv.Public().(ed25519.PublicKey), pub) {
		return nil, nil, fmt.Errorf("secret key does not match public key")
	}
	return ed25519.PublicKey(pub), priv, nil
}
