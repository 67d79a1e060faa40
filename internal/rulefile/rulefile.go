// Package rulefile reads rulesets from YAML, JSON or TOML files, keeping the
// order in which fields are written.
//
// Each top-level key is a field path. Its value is a rule string (possibly
// pipe-joined) or a list whose items are rule strings or {rule: TypeName}
// objects standing for structured rules:
//
//	name: documentation:The user's name|required|string
//	ids.*:
//	  - documentation:Tag ids
//	  - integer
//	password:
//	  - documentation:A strong password
//	  - rule: Password
package rulefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Gobd/ruledoc"
)

// ErrUnsupportedFormat is returned for file extensions Load cannot read.
var ErrUnsupportedFormat = errors.New("rulefile: unsupported format")

// Load reads the ruleset at path, picking the decoder from its extension.
func Load(path string) (ruledoc.Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rulefile: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ParseYAML decodes a YAML (or JSON) ruleset.
func ParseYAML(data []byte) (ruledoc.Ruleset, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("rulefile: parse yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return ruledoc.Ruleset{}, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rulefile: line %d: ruleset must be a mapping", doc.Line)
	}

	rules := make(ruledoc.Ruleset, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		entries, err := yamlRules(value)
		if err != nil {
			return nil, fmt.Errorf("rulefile: field %q: %w", key.Value, err)
		}
		rules = append(rules, ruledoc.Field(key.Value, entries...))
	}
	return rules, nil
}

func yamlRules(node *yaml.Node) ([]ruledoc.Rule, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return []ruledoc.Rule{ruledoc.StringRule(node.Value)}, nil
	case yaml.SequenceNode:
		out := make([]ruledoc.Rule, 0, len(node.Content))
		for _, item := range node.Content {
			r, err := yamlRule(item)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return out, nil
	}
	return nil, fmt.Errorf("line %d: rules must be a string or a list", node.Line)
}

func yamlRule(node *yaml.Node) (ruledoc.Rule, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return ruledoc.StringRule(node.Value), nil
	case yaml.MappingNode:
		var obj struct {
			Rule string `yaml:"rule"`
		}
		if err := node.Decode(&obj); err != nil {
			return nil, err
		}
		if obj.Rule == "" {
			return nil, fmt.Errorf("line %d: structured rule needs a rule name", node.Line)
		}
		return ruledoc.StructuredRule{TypeName: obj.Rule}, nil
	}
	return nil, fmt.Errorf("line %d: unsupported rule", node.Line)
}

// ParseTOML decodes a TOML ruleset. Field paths containing dots must be quoted.
func ParseTOML(data []byte) (ruledoc.Ruleset, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("rulefile: parse toml: %w", err)
	}

	rules := ruledoc.Ruleset{}
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		path := key[0]
		entries, err := tomlRules(raw[path])
		if err != nil {
			return nil, fmt.Errorf("rulefile: field %q: %w", path, err)
		}
		rules = append(rules, ruledoc.Field(path, entries...))
	}
	return rules, nil
}

func tomlRules(v any) ([]ruledoc.Rule, error) {
	switch v := v.(type) {
	case string:
		return []ruledoc.Rule{ruledoc.StringRule(v)}, nil
	case []any:
		out := make([]ruledoc.Rule, 0, len(v))
		for _, item := range v {
			r, err := tomlRule(item)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return out, nil
	case []map[string]any:
		out := make([]ruledoc.Rule, 0, len(v))
		for _, item := range v {
			r, err := tomlRule(item)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return out, nil
	}
	return nil, fmt.Errorf("rules must be a string or an array, got %T", v)
}

func tomlRule(v any) (ruledoc.Rule, error) {
	switch v := v.(type) {
	case string:
		return ruledoc.StringRule(v), nil
	case map[string]any:
		name, _ := v["rule"].(string)
		if name == "" {
			return nil, errors.New("structured rule needs a rule name")
		}
		return ruledoc.StructuredRule{TypeName: name}, nil
	}
	return nil, fmt.Errorf("unsupported rule %T", v)
}
