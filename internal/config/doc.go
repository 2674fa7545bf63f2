// Package config loads the keypair inputs and the general settings blob.
//
// Settings live in the conf.yml record of the blob store. Salt, password,
// cost and override inputs come only from NODEKEY_* environment variables
// and command-line flags, flags winning. Keys such as salt found in the
// record are kept in Settings for stripping but never used as inputs.
package config
