package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"nodekey/internal/config"
	"nodekey/internal/domain"
	"nodekey/internal/keyring"
	"nodekey/internal/prompt"
	"nodekey/internal/services/keypair"
	"nodekey/internal/store"
)

// sqliteFile is the database file name under Home for the sqlite store.
const sqliteFile = "records.db"

// Wire bundles the store, codec, prompter and services for the CLI.
type Wire struct {
	Store   domain.BlobStore
	Codec   domain.KeyringCodec
	Prompt  domain.Prompter
	Keypair *keypair.Service

	closer io.Closer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(ctx context.Context, cfg Config) (*Wire, error) {
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	w := &Wire{Codec: keyring.NewYAMLCodec()}
	switch cfg.Store {
	case config.StoreSQLite:
		if err := fs.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, err
		}
		s, err := store.OpenSQLStore(ctx, filepath.Join(cfg.Home, sqliteFile))
		if err != nil {
			return nil, err
		}
		w.Store, w.closer = s, s
	case config.StoreFile, "":
		w.Store = store.NewFileStore(fs, cfg.Home)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	if f, ok := in.(*os.File); ok {
		w.Prompt = prompt.NewTerminal(f, out)
	} else {
		w.Prompt = prompt.NewLineReader(in, out)
	}
	w.Keypair = keypair.New(w.Store, w.Codec,
		keypair.WithPrompter(w.Prompt),
		keypair.WithFileSystem(fs),
	)
	return w, nil
}

// Close releases the store.
func (w *Wire) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
