package i18nstr

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// The persisted form of a String is always its text encoding. JSON and
// YAML wrap it in a plain string scalar.

// MarshalText implements encoding.TextMarshaler.
func (s String) MarshalText() ([]byte, error) {
	return []byte(Format(s)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *String) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON encodes s as a JSON string.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(Format(s))
}

// UnmarshalJSON decodes a JSON string holding an encoded String.
func (s *String) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("decoding i18n string: %w", err)
	}
	return s.UnmarshalText([]byte(text))
}

// MarshalYAML encodes s as a YAML string scalar.
func (s String) MarshalYAML() (any, error) {
	return Format(s), nil
}

// UnmarshalYAML decodes a YAML string scalar holding an encoded String.
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("decoding i18n string: line %d: expected a scalar", node.Line)
	}
	return s.UnmarshalText([]byte(node.Value))
}
