package config

import "github.com/spf13/pflag"

// Flag and setting keys.
const (
	KeyHome        = "home"
	KeyStore       = "store"
	KeyVerbose     = "verbose"
	KeySalt        = "salt"
	KeyPassword    = "passwd"
	KeyCostN       = "keyN"
	KeyCostR       = "keyr"
	KeyCostP       = "keyp"
	KeyForcePrompt = "keyprompt"
	KeyForceFile   = "keyfile"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// RegisterFlags defines the location flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyHome, "", "config dir (default ~/.nodekey)")
	fs.String(KeyStore, StoreFile, `record store ("file", "sqlite")`)
	fs.BoolP(KeyVerbose, "v", false, "enable debug logging")
}

// RegisterKeyFlags defines the keypair input flags on fs.
func RegisterKeyFlags(fs *pflag.FlagSet) {
	fs.String(KeySalt, "", "salt for keypair derivation")
	fs.String(KeyPassword, "", "password for keypair derivation")
	fs.Int(KeyCostN, 0, "scrypt N cost (default 4096)")
	fs.Int(KeyCostR, 0, "scrypt r cost (default 16)")
	fs.Int(KeyCostP, 0, "scrypt p cost (default 1)")
	fs.Bool(KeyForcePrompt, false, "prompt for a keypair used for this session only")
	fs.String(KeyForceFile, "", "keyring file used for this session only")
}
