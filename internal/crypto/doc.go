// Package crypto exposes the primitives used by nodekey.
//
// Contents
//
//   - Deterministic keypair derivation: scrypt stretches a salt and password
//     into a 32-byte seed that becomes an Ed25519 signing key (Derive,
//     DeriveDefault)
//   - Base58 text encoding of key material (EncodeKey, DecodeKey,
//     DecodeKeyPair)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Derive is pure: the same salt, password and cost parameters always give
// the same keypair, which is what lets a node recover its identity from a
// memorised salt/password pair. Intermediate seed bytes are wiped after use.
package crypto
