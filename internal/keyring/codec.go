package keyring

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"nodekey/internal/domain"
)

// YAMLCodec reads and writes keyring records.
type YAMLCodec struct{}

// NewYAMLCodec returns the keyring codec.
func NewYAMLCodec() YAMLCodec { return YAMLCodec{} }

// Encode renders kp with both values double-quoted.
func (YAMLCodec) Encode(kp domain.KeyPair) ([]byte, error) {
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "pub"},
			{Kind: yaml.ScalarNode, Value: kp.Pub, Style: yaml.DoubleQuotedStyle},
			{Kind: yaml.ScalarNode, Value: "sec"},
			{Kind: yaml.ScalarNode, Value: kp.Sec, Style: yaml.DoubleQuotedStyle},
		},
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode keyring: %w", err)
	}
	return out, nil
}

// Decode parses a keyring record. Missing fields decode as empty strings;
// an empty document decodes as an empty keypair.
func (YAMLCodec) Decode(content []byte) (*domain.KeyPair, error) {
	var kp domain.KeyPair
	if err := yaml.Unmarshal(content, &kp); err != nil {
		return nil, fmt.Errorf("decode keyring: %w", err)
	}
	return &kp, nil
}

// Compile-time assertion that YAMLCodec implements domain.KeyringCodec.
var _ domain.KeyringCodec = YAMLCodec{}
