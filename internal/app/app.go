package app

import (
	"context"

	"github.com/spf13/pflag"

	"nodekey/internal/config"
	"nodekey/internal/domain"
)

// App is the state of one command invocation.
type App struct {
	*Wire

	Config  *config.Config
	Session *domain.SessionState
}

// New wires dependencies for cfg and loads the settings record with flags
// layered on top. The keypair is not resolved yet.
func New(ctx context.Context, cfg Config, flags *pflag.FlagSet) (*App, error) {
	w, err := NewWire(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c, err := config.Load(ctx, w.Store, flags)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	return &App{Wire: w, Config: c}, nil
}

// LoadKeypair resolves the session keypair.
func (a *App) LoadKeypair(ctx context.Context) (*domain.KeyPair, error) {
	state, err := a.Keypair.Load(ctx, a.Config.Params, a.Config.Configured)
	if err != nil {
		return nil, err
	}
	a.Session = state
	return state.Effective, nil
}

// Save persists the keyring and then the stripped settings record.
func (a *App) Save(ctx context.Context) error {
	if err := a.Keypair.BeforeSave(ctx, a.Session, a.Config.Settings); err != nil {
		return err
	}
	return config.Save(ctx, a.Store, a.Config.Settings)
}
