package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fixkit/deprecation"
	"fixkit/ordering"
)

// Set represents a parsed rule-set document.
type Set struct {
	// Version of the rule-set schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Rules lists the rule descriptors in document order.
	Rules []*Rule `yaml:"rules"`
}

// Parse parses YAML data into a Set.
func Parse(data []byte) (*Set, error) {
	var s Set

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule set YAML: %w", err)
	}

	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Set) {
	if s.Version == "" {
		s.Version = "1"
	}
}

// Marshal serializes a Set to YAML.
func Marshal(s *Set) ([]byte, error) {
	return yaml.Marshal(s)
}

// Ordered returns the rules in execution order: descending priority, with
// equal priorities keeping document order so runs are reproducible.
func (s *Set) Ordered() []*Rule {
	return ordering.ByPriority(s.Rules)
}

// Deprecated returns the deprecated rules in document order.
func (s *Set) Deprecated() []*Rule {
	var out []*Rule

	for _, r := range s.Rules {
		if r.Deprecated() {
			out = append(out, r)
		}
	}

	return out
}

// TriggerDeprecations feeds every deprecated rule's notice through the
// registry. In escalation mode the first deprecated rule fails the call.
func (s *Set) TriggerDeprecations(reg *deprecation.Registry) error {
	for _, r := range s.Deprecated() {
		notice, err := r.DeprecationNotice()
		if err != nil {
			return err
		}

		err = reg.Trigger(notice)
		if err != nil {
			return err
		}
	}

	return nil
}
