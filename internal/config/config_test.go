package config_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"nodekey/internal/config"
	"nodekey/internal/domain"
	"nodekey/internal/store"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	config.RegisterKeyFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return fs
}

func newStore(t *testing.T, conf string) *store.FileStore {
	t.Helper()
	s := store.NewFileStore(afero.NewMemMapFs(), "/home")
	if conf != "" {
		if err := s.Write(context.Background(), "conf.yml", []byte(conf)); err != nil {
			t.Fatalf("seed conf: %v", err)
		}
	}
	return s
}

func TestLoad_NoInputs(t *testing.T) {
	cfg, err := config.Load(context.Background(), newStore(t, ""), newFlags(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p := cfg.Params
	if p.Salt != nil || p.Password != nil || p.Cost.IsSet() || p.ForcePrompt || p.ForceFile != "" {
		t.Fatalf("unexpected params %+v", p)
	}
	if len(cfg.Settings) != 0 || cfg.Configured != nil {
		t.Fatalf("unexpected settings %v", cfg.Settings)
	}
}

func TestLoad_Flags(t *testing.T) {
	flags := newFlags(t,
		"--salt", "abc", "--passwd", "", "--keyN", "1024", "--keyp", "2",
		"--keyprompt", "--keyfile", "/tmp/k.yml",
	)
	cfg, err := config.Load(context.Background(), newStore(t, ""), flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p := cfg.Params
	if p.Salt == nil || *p.Salt != "abc" {
		t.Fatalf("salt = %v", p.Salt)
	}
	if p.Password == nil || *p.Password != "" {
		t.Fatal("an empty --passwd is still a supplied password")
	}
	if p.Cost.N == nil || *p.Cost.N != 1024 || p.Cost.R != nil || p.Cost.P == nil || *p.Cost.P != 2 {
		t.Fatalf("cost = %+v", p.Cost)
	}
	if !p.ForcePrompt || p.ForceFile != "/tmp/k.yml" {
		t.Fatalf("overrides = %v %q", p.ForcePrompt, p.ForceFile)
	}
	if len(cfg.Settings) != 0 {
		t.Fatalf("flags leaked into settings: %v", cfg.Settings)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("NODEKEY_PASSWD", "xyz")
	t.Setenv("NODEKEY_KEYR", "8")

	cfg, err := config.Load(context.Background(), newStore(t, "currency: g1\n"), newFlags(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Params.Password == nil || *cfg.Params.Password != "xyz" {
		t.Fatalf("password = %v", cfg.Params.Password)
	}
	if cfg.Params.Cost.R == nil || *cfg.Params.Cost.R != 8 {
		t.Fatalf("cost = %+v", cfg.Params.Cost)
	}
	if _, ok := cfg.Settings["passwd"]; ok {
		t.Fatal("environment leaked into settings")
	}
	if cfg.Settings["currency"] != "g1" {
		t.Fatalf("settings = %v", cfg.Settings)
	}
}

func TestLoad_SettingsRecord(t *testing.T) {
	conf := "salt: abc\npasswd: xyz\nkeyN: 2048\nkeyprompt: true\nkeyfile: /tmp/k.yml\npair:\n  pub: X\n  sec: Y\ncurrency: g1\n"
	cfg, err := config.Load(context.Background(), newStore(t, conf), newFlags(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p := cfg.Params
	if p.Salt != nil || p.Password != nil || p.Cost.IsSet() || p.ForcePrompt || p.ForceFile != "" {
		t.Fatalf("keypair inputs read from the settings record: %+v", p)
	}
	if cfg.Settings["salt"] != "abc" || cfg.Settings["currency"] != "g1" {
		t.Fatalf("settings = %v", cfg.Settings)
	}
	if !cfg.Configured.Equal(&domain.KeyPair{Pub: "X", Sec: "Y"}) {
		t.Fatalf("configured = %+v", cfg.Configured)
	}
}

func TestLoad_FlagWithStaleSettingsSalt(t *testing.T) {
	cfg, err := config.Load(context.Background(), newStore(t, "salt: abc\n"), newFlags(t, "--salt", "def"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg.Params.Salt != "def" {
		t.Fatalf("salt = %q, want flag value", *cfg.Params.Salt)
	}
	if cfg.Settings["salt"] != "abc" {
		t.Fatalf("settings salt = %v, want record value", cfg.Settings["salt"])
	}
}

func TestLoad_InvalidRecord(t *testing.T) {
	if _, err := config.Load(context.Background(), newStore(t, "salt: [abc\n"), newFlags(t)); err == nil {
		t.Fatal("expected a parse error")
	}
}

type brokenStore struct{}

func (brokenStore) Read(context.Context, string) ([]byte, error) { return nil, errors.New("boom") }
func (brokenStore) Write(context.Context, string, []byte) error  { return errors.New("boom") }

func TestLoad_StoreError(t *testing.T) {
	_, err := config.Load(context.Background(), brokenStore{}, nil)
	var serr *domain.StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, "")
	if err := config.Save(ctx, s, domain.Settings{"currency": "g1", "node": map[string]any{"port": 8080}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := s.Read(ctx, "conf.yml")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(raw), "currency: g1") {
		t.Fatalf("conf.yml = %q", raw)
	}

	cfg, err := config.Load(ctx, s, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Settings["currency"] != "g1" {
		t.Fatalf("settings = %v", cfg.Settings)
	}
	node, ok := cfg.Settings["node"].(map[string]any)
	if !ok || node["port"] != 8080 {
		t.Fatalf("nested settings = %#v", cfg.Settings["node"])
	}
}

func TestSave_StoreError(t *testing.T) {
	err := config.Save(context.Background(), brokenStore{}, nil)
	var serr *domain.StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := config.LoadLocation(newFlags(t, "--home", "/srv/node", "--store", "SQLite", "-v"))
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	if loc.Home != "/srv/node" || loc.Store != config.StoreSQLite || !loc.Verbose {
		t.Fatalf("location = %+v", loc)
	}
}

func TestLoadLocation_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	loc, err := config.LoadLocation(newFlags(t))
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	if loc.Home != "/home/tester/.nodekey" || loc.Store != config.StoreFile {
		t.Fatalf("location = %+v", loc)
	}
}

func TestLoadLocation_EnvHome(t *testing.T) {
	t.Setenv("NODEKEY_HOME", "/env/home")
	loc, err := config.LoadLocation(newFlags(t))
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	if loc.Home != "/env/home" {
		t.Fatalf("home = %q", loc.Home)
	}
}

func TestLoadLocation_UnknownStore(t *testing.T) {
	if _, err := config.LoadLocation(newFlags(t, "--store", "s3")); err == nil {
		t.Fatal("expected an error for an unknown store")
	}
}
