package rules

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"fixkit/textshape"
)

// Rule describes one transformation rule known to the tool.
type Rule struct {
	name        string
	priority    int
	deprecation string
	successors  []string
}

// Name returns the canonical rule name.
func (r *Rule) Name() string { return r.name }

// Priority returns the execution priority. Higher priorities run earlier.
func (r *Rule) Priority() int { return r.priority }

// Deprecated reports whether the rule carries a deprecation message.
func (r *Rule) Deprecated() bool { return r.deprecation != "" }

// Deprecation returns the raw deprecation message, or "" when the rule is
// not deprecated.
func (r *Rule) Deprecation() string { return r.deprecation }

// Successors returns the names of the rules replacing a deprecated rule.
func (r *Rule) Successors() []string {
	out := make([]string, len(r.successors))
	copy(out, r.successors)

	return out
}

type ruleYAML struct {
	Name        string      `yaml:"name"`
	Priority    int         `yaml:"priority,omitempty"`
	Deprecation string      `yaml:"deprecation,omitempty"`
	Successors  StringArray `yaml:"successors,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Rule.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	var raw ruleYAML

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	if raw.Name == "" {
		return errors.New("rule name is required")
	}

	*r = Rule{
		name:        raw.Name,
		priority:    raw.Priority,
		deprecation: raw.Deprecation,
		successors:  raw.Successors,
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Rule.
func (r Rule) MarshalYAML() (any, error) {
	return ruleYAML{
		Name:        r.name,
		Priority:    r.priority,
		Deprecation: r.deprecation,
		Successors:  r.successors,
	}, nil
}

// StringArray accepts either a single string or a sequence of strings.
type StringArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringArray.
func (s *StringArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// Single string value
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringArray{str}
		} else {
			*s = StringArray{}
		}

		return nil

	case yaml.SequenceNode:
		// Array of strings
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// NameForType derives the canonical snake_case rule name from a rule
// implementation's type name, e.g. "BlankLineAfterHeader" becomes
// "blank_line_after_header".
func NameForType(typeName string) string {
	return textshape.CamelToSnake(typeName)
}
