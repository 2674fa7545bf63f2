// Package keyring encodes the canonical keyring record.
//
// The record is a two-field YAML document:
//
//	pub: "<base58 public key>"
//	sec: "<base58 secret key>"
//
// Both fields are required for the record to describe a usable keypair.
package keyring
