// Package commands defines the nodekey CLI and wires dependencies for subcommands.
//
// Commands
//
//   - config        Resolve the keypair and save keyring and settings
//   - wizard key    Interactively choose a new keypair and save it
//   - pub           Print (or copy) the public key
//   - fingerprint   Print the public key fingerprint
//   - derive        Print the keypair derived from --salt/--passwd
//
// # Keypair inputs
//
// Every command accepts --salt, --passwd and the scrypt cost flags --keyN,
// --keyr and --keyp. --keyprompt and --keyfile select a keypair for the
// current invocation only; it is never written to the keyring.
//
// # Implementation
//
// The root command resolves the home directory and store backend, then builds
// the dependency graph (store, codec, prompter, keypair service) and loads
// the settings record before any subcommand runs.
package commands
