// Package listfmt renders name lists as natural-language fragments for
// diagnostics and deprecation notices.
package listfmt

import (
	"errors"
	"strings"

	"fixkit/internal/common"
)

// ErrEmptyList reports an empty name list. Formatting an empty list is a
// programming error on the caller's side.
var ErrEmptyList = errors.New("list cannot be empty")

// JoinWithBackticks joins names into a human-readable enumeration, each name
// wrapped in backticks: one name renders as "`a`", several render as
// "`a`, `b` and `c`".
func JoinWithBackticks(names []string) (string, error) {
	if common.IsEmpty(names) {
		return "", ErrEmptyList
	}

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}

	if common.IsSingle(quoted) {
		return quoted[0], nil
	}

	last, _ := common.Last(quoted)

	return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + last, nil
}
