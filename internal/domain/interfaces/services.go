package interfaces

import (
	"context"

	domaintypes "nodekey/internal/domain/types"
)

// KeypairService resolves the session keypair and reconciles it with
// durable storage.
type KeypairService interface {
	Load(
		ctx context.Context,
		params domaintypes.RawParams,
		configured *domaintypes.KeyPair,
	) (*domaintypes.SessionState, error)
	PromptKey(
		ctx context.Context,
		state *domaintypes.SessionState,
		params domaintypes.RawParams,
		override bool,
	) error
	BeforeSave(
		ctx context.Context,
		state *domaintypes.SessionState,
		settings domaintypes.Settings,
	) error
}
