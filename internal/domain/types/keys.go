package types

// KeyPair is an Ed25519 signing keypair in its base58 text form.
//
// Pub encodes the 32-byte public key and Sec the 64-byte secret key
// (ed25519.PrivateKey layout).
type KeyPair struct {
	Pub string `json:"pub" yaml:"pub"`
	Sec string `json:"sec" yaml:"sec"`
}

// Valid reports whether both halves of the pair are present.
// A nil or partial pair is never valid.
func (k *KeyPair) Valid() bool {
	return k != nil && k.Pub != "" && k.Sec != ""
}

// Clone returns a copy of k, or nil when k is nil.
func (k *KeyPair) Clone() *KeyPair {
	if k == nil {
		return nil
	}
	c := *k
	return &c
}

// Equal reports whether both pairs hold the same keys.
func (k *KeyPair) Equal(o *KeyPair) bool {
	if k == nil || o == nil {
		return k == o
	}
	return k.Pub == o.Pub && k.Sec == o.Sec
}
