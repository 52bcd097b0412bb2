package runconfig

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// extrasKey holds arguments outside the catalogue in a preset file.
const extrasKey = "extra"

// LoadPreset reads a YAML preset: a mapping of option names to scalars plus
// an optional "extra" mapping. Scalars keep their literal text, so "lr: 1e-4"
// is forwarded as 1e-4. Null values are treated as unset.
func LoadPreset(fs afero.Fs, path string) (*Configuration, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}
	cfg, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return cfg, nil
}

func ParsePreset(data []byte) (*Configuration, error) {
	cfg := New()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return cfg, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top level must be a mapping", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Value == extrasKey {
			if err := parseExtras(cfg, value); err != nil {
				return nil, err
			}
			continue
		}
		raw, set, err := scalarValue(key, value)
		if err != nil {
			return nil, err
		}
		if !set {
			continue
		}
		if err := cfg.Set(key.Value, raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", key.Line, err)
		}
	}
	return cfg, nil
}

func parseExtras(cfg *Configuration, node *yaml.Node) error {
	if node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s must be a mapping", node.Line, extrasKey)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		raw, set, err := scalarValue(key, value)
		if err != nil {
			return err
		}
		if !set {
			continue
		}
		if err := cfg.SetExtra(key.Value, raw); err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
	}
	return nil
}

func scalarValue(key, value *yaml.Node) (string, bool, error) {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.ScalarNode {
		return "", false, fmt.Errorf("line %d: %s must be a scalar", value.Line, key.Value)
	}
	if value.Tag == "!!null" {
		return "", false, nil
	}
	return value.Value, true, nil
}
