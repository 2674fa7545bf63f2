package types

// SessionState is the keypair state of one process invocation.
//
// Effective is the keypair in use. When a session-only override is active
// the keypair it replaced is kept aside and restored before anything is
// persisted.
type SessionState struct {
	Effective *KeyPair

	persistedBackup *KeyPair
}

// NewSessionState returns a state whose effective keypair is kp.
func NewSessionState(kp *KeyPair) *SessionState {
	return &SessionState{Effective: kp}
}

// Override replaces the effective keypair for this session only. The first
// override records the keypair to restore; later overrides keep it.
func (s *SessionState) Override(kp *KeyPair) {
	if s.persistedBackup == nil {
		s.persistedBackup = s.Effective.Clone()
	}
	s.Effective = kp
}

// Overridden reports whether a session-only override is active.
func (s *SessionState) Overridden() bool {
	return s.persistedBackup != nil
}

// Persistable returns the keypair that may be written to durable storage:
// the pre-override keypair when an override is active, Effective otherwise.
func (s *SessionState) Persistable() *KeyPair {
	if s.persistedBackup != nil {
		return s.persistedBackup
	}
	return s.Effective
}

// Restore discards any override and clears the backup.
func (s *SessionState) Restore() {
	if s.persistedBackup != nil {
		s.Effective = s.persistedBackup
	}
	s.persistedBackup = nil
}
