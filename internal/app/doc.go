// Package app wires application dependencies for the CLI.
//
// It builds the record store, keyring codec, prompter and keypair service
// from Config, exposing them via the Wire struct for commands to use.
package app
