package keypair

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"nodekey/internal/crypto"
	"nodekey/internal/domain"
	"nodekey/internal/logging"
)

// Prompt messages.
const (
	msgModify   = "Modify you keypair?"
	msgSalt     = "Key's salt"
	msgPassword = "Key's password"
)

// ErrNoPrompter is returned when an interactive step runs without a prompter.
var ErrNoPrompter = errors.New("interactive prompt is not available")

// DeriveFunc derives a keypair from a salt, a password and cost parameters.
type DeriveFunc func(salt, password string, params domain.KdfParams) (domain.KeyPair, error)

// Service resolves and persists the session keypair.
type Service struct {
	store  domain.BlobStore
	codec  domain.KeyringCodec
	prompt domain.Prompter
	files  afero.Fs
	derive DeriveFunc
	random func() (string, error)
}

// Option customises a Service.
type Option func(*Service)

// WithPrompter sets the prompter used by --keyprompt and the key wizard.
func WithPrompter(p domain.Prompter) Option {
	return func(s *Service) { s.prompt = p }
}

// WithFileSystem sets the filesystem --keyfile paths are read from.
func WithFileSystem(fs afero.Fs) Option {
	return func(s *Service) { s.files = fs }
}

// WithRandom replaces the source of random salt/password strings.
func WithRandom(fn func() (string, error)) Option {
	return func(s *Service) { s.random = fn }
}

// WithDerive replaces the key derivation function.
func WithDerive(fn DeriveFunc) Option {
	return func(s *Service) { s.derive = fn }
}

// New returns a keypair service persisting the keyring in store.
func New(store domain.BlobStore, codec domain.KeyringCodec, opts ...Option) *Service {
	s := &Service{
		store:  store,
		codec:  codec,
		files:  afero.NewOsFs(),
		derive: crypto.Derive,
		random: randomDecimal,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load resolves the effective keypair for a session.
//
// configured is a keypair found in the general configuration, if any. The
// returned state always holds a valid effective keypair.
func (s *Service) Load(
	ctx context.Context,
	params domain.RawParams,
	configured *domain.KeyPair,
) (*domain.SessionState, error) {
	if params.Cost.IsSet() && !params.HasSecret() {
		return nil, &domain.ConfigError{Msg: domain.MsgMissingSecretForCost}
	}

	var (
		effective *domain.KeyPair
		source    string
	)
	switch {
	case params.HasSecret():
		kp, err := s.derive(params.SaltOrEmpty(), params.PasswordOrEmpty(), params.KdfParams())
		if err != nil {
			return nil, err
		}
		effective, source = &kp, "salt and password"
	case configured.Valid():
		effective, source = configured.Clone(), "configuration"
	}

	if !effective.Valid() {
		kp, err := s.readKeyring(ctx)
		if err != nil {
			return nil, err
		}
		if kp.Valid() {
			effective, source = kp, domain.KeyringRecord.String()
		}
	}

	if !effective.Valid() {
		kp, err := s.generate()
		if err != nil {
			return nil, err
		}
		effective, source = &kp, "random generation"
	}
	logging.Infof("keypair loaded from %s", source)
	logging.Debugf("public key %s", effective.Pub)

	state := domain.NewSessionState(effective)

	if params.ForcePrompt {
		if err := s.PromptKey(ctx, state, params, true); err != nil {
			return nil, err
		}
	}

	if params.ForceFile != "" {
		kp, err := s.readKeyfile(ctx, params.ForceFile)
		if err != nil {
			return nil, err
		}
		state.Override(kp)
		logging.Infof("using keypair from %s for this session only", params.ForceFile)
	}

	return state, nil
}

// PromptKey asks whether to change the keypair and, if so, derives a new one
// from a prompted salt and password.
//
// CLI-supplied secrets are offered as an obfuscated default; answering with
// that placeholder keeps the CLI value. With override set the new keypair is
// used for this session only.
func (s *Service) PromptKey(
	ctx context.Context,
	state *domain.SessionState,
	params domain.RawParams,
	override bool,
) error {
	if s.prompt == nil {
		return ErrNoPrompter
	}

	change, err := s.prompt.PromptConfirm(ctx, msgModify, !state.Effective.Valid())
	if err != nil {
		return err
	}
	if !change {
		return nil
	}

	salt, err := s.promptSecret(ctx, msgSalt, params.Salt)
	if err != nil {
		return err
	}
	password, err := s.promptSecret(ctx, msgPassword, params.Password)
	if err != nil {
		return err
	}

	kp, err := s.derive(salt, password, params.KdfParams())
	if err != nil {
		return err
	}
	if override {
		state.Override(&kp)
		logging.Infof("using prompted keypair for this session only")
		return nil
	}
	state.Effective = &kp
	return nil
}

// BeforeSave restores the persistable keypair, writes the keyring record and
// then removes salt, password and keypair from settings.
//
// settings is left untouched if the keyring cannot be written.
func (s *Service) BeforeSave(
	ctx context.Context,
	state *domain.SessionState,
	settings domain.Settings,
) error {
	if state == nil {
		return errors.New("no keypair session to save")
	}
	state.Restore()
	if !state.Effective.Valid() {
		return errors.New("session has no complete keypair to save")
	}

	content, err := s.codec.Encode(*state.Effective)
	if err != nil {
		return err
	}
	name := domain.KeyringRecord.String()
	if err := s.store.Write(ctx, name, content); err != nil {
		return &domain.StoreError{Op: "write", Name: name, Err: err}
	}

	settings.StripSecrets()
	return nil
}

// readKeyring returns the stored keypair, or nil when there is none usable.
func (s *Service) readKeyring(ctx context.Context) (*domain.KeyPair, error) {
	name := domain.KeyringRecord.String()
	content, err := s.store.Read(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "read", Name: name, Err: err}
	}
	kp, err := s.codec.Decode(content)
	if err != nil {
		logging.Warnf("ignoring unreadable %s: %v", name, err)
		return nil, nil
	}
	return kp, nil
}

func (s *Service) readKeyfile(ctx context.Context, path string) (*domain.KeyPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := afero.ReadFile(s.files, path)
	if err != nil {
		return nil, &domain.StoreError{Op: "read", Name: path, Err: err}
	}
	kp, err := s.codec.Decode(content)
	if err != nil {
		logging.Debugf("decode %s: %v", path, err)
		return nil, &domain.ConfigError{Msg: domain.MsgIncompleteKeyfile}
	}
	if !kp.Valid() {
		return nil, &domain.ConfigError{Msg: domain.MsgIncompleteKeyfile}
	}
	return &domain.KeyPair{Pub: kp.Pub, Sec: kp.Sec}, nil
}

func (s *Service) generate() (domain.KeyPair, error) {
	salt, err := s.random()
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("random salt: %w", err)
	}
	password, err := s.random()
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("random password: %w", err)
	}
	return s.derive(salt, password, domain.DefaultKdfParams())
}

func (s *Service) promptSecret(ctx context.Context, message string, current *string) (string, error) {
	placeholder := ""
	if current != nil {
		placeholder = obfuscate(*current)
	}
	answer, err := s.prompt.PromptSecret(ctx, message, placeholder)
	if err != nil {
		return "", err
	}
	if placeholder != "" && answer == placeholder {
		return *current, nil
	}
	return answer, nil
}

// obfuscate returns one '*' per character of v.
func obfuscate(v string) string {
	return strings.Repeat("*", utf8.RuneCountInString(v))
}

// randomDecimal returns a uniformly drawn integer in [0, 2^31-1) as a decimal string.
func randomDecimal() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt32))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64(), 10), nil
}

// Compile-time assertion that Service implements domain.KeypairService.
var _ domain.KeypairService = (*Service)(nil)
