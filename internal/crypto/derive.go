package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"

	"nodekey/internal/domain"
	"nodekey/internal/util/memzero"
)

// SeedBytes is the length of the scrypt output used as the Ed25519 seed.
const SeedBytes = ed25519.SeedSize

var errShortSeed = errors.New("scrypt: derived seed is too short")

// Derive stretches password with salt through scrypt and expands the result
// into an Ed25519 keypair encoded in base58.
//
// Empty salt and password are accepted. Failures are *domain.DerivationError.
func Derive(salt, password string, params domain.KdfParams) (domain.KeyPair, error) {
	if params.N <= 0 || params.R <= 0 || params.P <= 0 {
		return domain.KeyPair{}, &domain.DerivationError{
			Err: fmt.Errorf("scrypt: cost parameters must be positive (N=%d, r=%d, p=%d)", params.N, params.R, params.P),
		}
	}

	seed, err := scrypt.Key([]byte(password), []byte(salt), params.N, params.R, params.P, SeedBytes)
	if err != nil {
		return domain.KeyPair{}, &domain.DerivationError{Err: err}
	}
	defer memzero.Zero(seed)
	if len(seed) < SeedBytes {
		return domain.KeyPair{}, &domain.DerivationError{Err: errShortSeed}
	}

	priv := ed25519.NewKeyFromSeed(seed[:SeedBytes])
	defer memzero.Zero(priv)
	pub := priv.Public().(ed25519.PublicKey)

	return domain.KeyPair{
		Pub: EncodeKey(pub),
		Sec: EncodeKey(priv),
	}, nil
}

// DeriveDefault is Derive with the default cost parameters.
func DeriveDefault(salt, password string) (domain.KeyPair, error) {
	return Derive(salt, password, domain.DefaultKdfParams())
}
