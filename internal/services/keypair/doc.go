// Package keypair resolves the node's signing keypair for a session and
// reconciles it with durable storage.
//
// Load picks the effective keypair by precedence: derivation from an
// explicit salt/password, a keypair already present in the configuration,
// the stored keyring record, and finally a randomly derived keypair. A
// prompted (--keyprompt) or file-supplied (--keyfile) keypair is then
// layered on top as a session-only override.
//
// BeforeSave drops any override, writes the keyring record and strips
// secrets from the general settings, in that order.
package keypair
