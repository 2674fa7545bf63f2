package types

// Default scrypt cost parameters.
const (
	DefaultN = 4096
	DefaultR = 16
	DefaultP = 1
)

// KdfParams holds scrypt cost parameters.
type KdfParams struct {
	N int `json:"N"`
	R int `json:"r"`
	P int `json:"p"`
}

// DefaultKdfParams returns {N: 4096, r: 16, p: 1}.
func DefaultKdfParams() KdfParams {
	return KdfParams{N: DefaultN, R: DefaultR, P: DefaultP}
}

// CostOverride is a partial KdfParams supplied by the user. Nil fields keep
// the base value.
type CostOverride struct {
	N *int
	R *int
	P *int
}

// IsSet reports whether any cost parameter was supplied.
func (c CostOverride) IsSet() bool {
	return c.N != nil || c.R != nil || c.P != nil
}

// Apply returns base with the supplied fields replaced.
func (c CostOverride) Apply(base KdfParams) KdfParams {
	if c.N != nil {
		base.N = *c.N
	}
	if c.R != nil {
		base.R = *c.R
	}
	if c.P != nil {
		base.P = *c.P
	}
	return base
}
