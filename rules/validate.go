package rules

import (
	"fmt"

	"fixkit/internal/common"
	"fixkit/internal/diagnostic"
)

// Validate validates the rule-set structure. This is a structural check
// only; whether the named rules actually exist as plugins is the rule
// loader's job.
func (s *Set) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("set_is_nil", "rule set is nil", "")
		return res
	}

	seen := map[string]struct{}{}

	for _, r := range s.Rules {
		if _, ok := seen[r.Name()]; ok {
			res.AddError("duplicate_rule", fmt.Sprintf("duplicate rule %q", r.Name()), r.Name())
			continue
		}

		seen[r.Name()] = struct{}{}
	}

	for _, r := range s.Deprecated() {
		if common.IsEmpty(r.successors) {
			res.AddWarning("deprecated_without_successors",
				"deprecated rule names no successor rules", r.Name())
			continue
		}

		for _, succ := range r.successors {
			if _, ok := seen[succ]; !ok {
				res.AddWarning("unknown_successor",
					fmt.Sprintf("successor %q is not part of the rule set", succ), r.Name())
			}
		}
	}

	return res
}
