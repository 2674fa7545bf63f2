package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// RecordName names a record in a blob store.
type RecordName string

// String returns the string form of the record name.
func (n RecordName) String() string { return string(n) }

// Canonical record names.
const (
	KeyringRecord  RecordName = "keyring.yml"
	SettingsRecord RecordName = "conf.yml"
)
