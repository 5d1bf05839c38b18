package rules

import (
	"fmt"

	"fixkit/internal/common"
	"fixkit/listfmt"
)

// DeprecationNotice renders the user-facing message for a deprecated rule,
// naming its successors when it has any.
func (r *Rule) DeprecationNotice() (string, error) {
	if !r.Deprecated() {
		return "", fmt.Errorf("rule %q is not deprecated", r.name)
	}

	msg := fmt.Sprintf("rule `%s` is deprecated: %s", r.name, r.deprecation)
	if common.IsEmpty(r.successors) {
		return msg, nil
	}

	joined, err := listfmt.JoinWithBackticks(r.successors)
	if err != nil {
		return "", err
	}

	return msg + ", use " + joined + " instead", nil
}
