package interfaces

import domaintypes "nodekey/internal/domain/types"

// KeyringCodec converts a keypair to and from its stored text record.
type KeyringCodec interface {
	Encode(kp domaintypes.KeyPair) ([]byte, error)
	// Decode parses a record. It does not check completeness; callers use
	// KeyPair.Valid for that.
	Decode(content []byte) (*domaintypes.KeyPair, error)
}
