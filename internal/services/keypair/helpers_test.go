package keypair_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"

	"nodekey/internal/crypto"
	"nodekey/internal/domain"
	"nodekey/internal/keyring"
	"nodekey/internal/services/keypair"
	"nodekey/internal/store"
)

// scriptedPrompter answers prompts from fixed values and records the
// defaults it was offered.
type scriptedPrompter struct {
	confirm        bool
	secrets        []string
	confirmDefault []bool
	secretDefaults []string
}

func (p *scriptedPrompter) PromptSecret(_ context.Context, _ string, def string) (string, error) {
	p.secretDefaults = append(p.secretDefaults, def)
	if len(p.secrets) == 0 {
		return "", errors.New("unexpected secret prompt")
	}
	answer := p.secrets[0]
	p.secrets = p.secrets[1:]
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *scriptedPrompter) PromptConfirm(_ context.Context, _ string, def bool) (bool, error) {
	p.confirmDefault = append(p.confirmDefault, def)
	return p.confirm, nil
}

// failingStore fails every operation with err.
type failingStore struct{ err error }

func (s failingStore) Read(context.Context, string) ([]byte, error) { return nil, s.err }
func (s failingStore) Write(context.Context, string, []byte) error  { return s.err }

// readOnlyStore serves content but refuses writes.
type readOnlyStore struct {
	domain.BlobStore
	err error
}

func (s readOnlyStore) Write(context.Context, string, []byte) error { return s.err }

type fixture struct {
	fs     afero.Fs
	store  *store.FileStore
	prompt *scriptedPrompter
	svc    *keypair.Service
}

func newFixture(t *testing.T, opts ...keypair.Option) *fixture {
	t.Helper()
	fs := afero.NewMemMapFs()
	f := &fixture{
		fs:     fs,
		store:  store.NewFileStore(fs, "/home"),
		prompt: &scriptedPrompter{},
	}
	opts = append([]keypair.Option{
		keypair.WithPrompter(f.prompt),
		keypair.WithFileSystem(fs),
	}, opts...)
	f.svc = keypair.New(f.store, keyring.NewYAMLCodec(), opts...)
	return f
}

func (f *fixture) writeKeyring(t *testing.T, content string) {
	t.Helper()
	if err := f.store.Write(context.Background(), "keyring.yml", []byte(content)); err != nil {
		t.Fatalf("seed keyring: %v", err)
	}
}

func (f *fixture) readKeyring(t *testing.T) string {
	t.Helper()
	b, err := f.store.Read(context.Background(), "keyring.yml")
	if err != nil {
		t.Fatalf("read keyring: %v", err)
	}
	return string(b)
}

func mustDerive(t *testing.T, salt, password string) *domain.KeyPair {
	t.Helper()
	kp, err := crypto.DeriveDefault(salt, password)
	if err != nil {
		t.Fatalf("derive %q/%q: %v", salt, password, err)
	}
	return &kp
}

// sequence returns a random source yielding "r1", "r2", ...
func sequence() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("r%d", n), nil
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
