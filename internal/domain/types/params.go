package types

// RawParams are the user-supplied inputs that drive keypair resolution.
//
// A nil Salt or Password means the value was not supplied at all; an empty
// string is a supplied (weak) value.
type RawParams struct {
	Salt        *string
	Password    *string
	Cost        CostOverride
	ForcePrompt bool
	ForceFile   string
}

// HasSecret reports whether a salt or a password was supplied.
func (p RawParams) HasSecret() bool {
	return p.Salt != nil || p.Password != nil
}

// SaltOrEmpty returns the supplied salt, or "".
func (p RawParams) SaltOrEmpty() string {
	if p.Salt == nil {
		return ""
	}
	return *p.Salt
}

// PasswordOrEmpty returns the supplied password, or "".
func (p RawParams) PasswordOrEmpty() string {
	if p.Password == nil {
		return ""
	}
	return *p.Password
}

// KdfParams returns the default cost parameters with any override applied.
func (p RawParams) KdfParams() KdfParams {
	return p.Cost.Apply(DefaultKdfParams())
}
