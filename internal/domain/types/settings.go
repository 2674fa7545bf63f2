package types

// Keys of the general configuration that must never reach disk.
const (
	SettingSalt     = "salt"
	SettingPassword = "passwd"
	SettingPair     = "pair"
)

// Settings is the general configuration blob the host persists.
type Settings map[string]any

// StripSecrets removes salt, password and any keypair from s.
func (s Settings) StripSecrets() {
	delete(s, SettingSalt)
	delete(s, SettingPassword)
	delete(s, SettingPair)
}

// Pair returns a keypair previously stored under "pair", if any.
func (s Settings) Pair() *KeyPair {
	raw, ok := s[SettingPair]
	if !ok {
		return nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	pub, _ := m["pub"].(string)
	sec, _ := m["sec"].(string)
	if pub == "" && sec == "" {
		return nil
	}
	return &KeyPair{Pub: pub, Sec: sec}
}
