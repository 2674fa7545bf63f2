package domain

import (
	interfaces "nodekey/internal/domain/interfaces"
	types "nodekey/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyPair         = types.KeyPair
	KdfParams       = types.KdfParams
	CostOverride    = types.CostOverride
	RawParams       = types.RawParams
	SessionState    = types.SessionState
	Settings        = types.Settings
	Fingerprint     = types.Fingerprint
	RecordName      = types.RecordName
	ConfigError     = types.ConfigError
	DerivationError = types.DerivationError
	StoreError      = types.StoreError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	BlobStore      = interfaces.BlobStore
	Prompter       = interfaces.Prompter
	KeyringCodec   = interfaces.KeyringCodec
	KeypairService = interfaces.KeypairService
)

// Re-exported constants and sentinels.
const (
	KeyringRecord  = types.KeyringRecord
	SettingsRecord = types.SettingsRecord

	MsgMissingSecretForCost = types.MsgMissingSecretForCost
	MsgIncompleteKeyfile    = types.MsgIncompleteKeyfile
)

var (
	ErrNotFound      = types.ErrNotFound
	DefaultKdfParams = types.DefaultKdfParams
	NewSessionState  = types.NewSessionState
)
