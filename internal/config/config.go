package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"nodekey/internal/domain"
)

const envPrefix = "nodekey"

// Location says where records are kept.
type Location struct {
	Home    string
	Store   string
	Verbose bool
}

// Config is the loaded keypair input and general settings.
type Config struct {
	Params     domain.RawParams
	Settings   domain.Settings
	Configured *domain.KeyPair
}

// LoadLocation resolves the home directory and store backend from flags and
// the environment.
func LoadLocation(flags *pflag.FlagSet) (Location, error) {
	v := newViper()
	bindEnv(v)
	if err := v.BindPFlags(flags); err != nil {
		return Location{}, err
	}

	loc := Location{
		Home:    v.GetString(KeyHome),
		Store:   strings.ToLower(v.GetString(KeyStore)),
		Verbose: v.GetBool(KeyVerbose),
	}
	if loc.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Location{}, fmt.Errorf("resolve home: %w", err)
		}
		loc.Home = filepath.Join(dir, ".nodekey")
	}
	switch loc.Store {
	case "":
		loc.Store = StoreFile
	case StoreFile, StoreSQLite:
	default:
		return Location{}, fmt.Errorf("unknown store %q (want %q or %q)", loc.Store, StoreFile, StoreSQLite)
	}
	return loc, nil
}

// Load reads the settings record from store and builds the keypair inputs
// from environment and flags. Keypair inputs are never read from the record.
func Load(ctx context.Context, store domain.BlobStore, flags *pflag.FlagSet) (*Config, error) {
	name := domain.SettingsRecord.String()
	content, err := store.Read(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		content = nil
	case err != nil:
		return nil, &domain.StoreError{Op: "read", Name: name, Err: err}
	}
	record := newViper()
	if err := record.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	settings := domain.Settings(record.AllSettings())

	inputs := newViper()
	bindEnv(inputs)
	if flags != nil {
		if err := inputs.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Params:     rawParams(inputs),
		Settings:   settings,
		Configured: settings.Pair(),
	}
	return cfg, nil
}

// Save writes settings to the settings record of store.
func Save(ctx context.Context, store domain.BlobStore, settings domain.Settings) error {
	if settings == nil {
		settings = domain.Settings{}
	}
	out, err := yaml.Marshal(map[string]any(settings))
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	name := domain.SettingsRecord.String()
	if err := store.Write(ctx, name, out); err != nil {
		return &domain.StoreError{Op: "write", Name: name, Err: err}
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	return v
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
}

func rawParams(v *viper.Viper) domain.RawParams {
	var p domain.RawParams
	if v.IsSet(KeySalt) {
		s := v.GetString(KeySalt)
		p.Salt = &s
	}
	if v.IsSet(KeyPassword) {
		s := v.GetString(KeyPassword)
		p.Password = &s
	}
	p.Cost = domain.CostOverride{
		N: optionalInt(v, KeyCostN),
		R: optionalInt(v, KeyCostR),
		P: optionalInt(v, KeyCostP),
	}
	p.ForcePrompt = v.GetBool(KeyForcePrompt)
	p.ForceFile = v.GetString(KeyForceFile)
	return p
}

func optionalInt(v *viper.Viper, key string) *int {
	if !v.IsSet(key) {
		return nil
	}
	n := v.GetInt(key)
	return &n
}
