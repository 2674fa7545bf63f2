package types

import (
	"errors"
	"fmt"
)

// User-facing configuration error messages.
const (
	MsgMissingSecretForCost = "Missing --salt and --passwd options along with --keyN|keyr|keyp option"
	MsgIncompleteKeyfile    = "Could not load full keyring from file"
)

// ErrNotFound is returned by blob stores for a record that does not exist.
var ErrNotFound = errors.New("record not found")

// ConfigError reports parameters the user has to correct before retrying.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// DerivationError reports a key derivation failure, typically scrypt
// rejecting its cost parameters.
type DerivationError struct {
	Err error
}

func (e *DerivationError) Error() string { return e.Err.Error() }

func (e *DerivationError) Unwrap() error { return e.Err }

// StoreError reports an I/O failure reading or writing a record.
type StoreError struct {
	Op   string
	Name string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
