package textshape

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotWhitespace reports a fragment handed to [TrailingIndent] that
// contains non-whitespace content. This is a precondition violation on the
// caller's side, never a retryable condition.
var ErrNotWhitespace = errors.New("fragment is not purely whitespace")

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// TrailingIndent returns the indentation contributed by the final physical
// line of a whitespace run: everything strictly after the last newline, with
// "\r\n" and lone "\r" treated as "\n". A fragment without any newline
// yields the empty string. Callers use this to reproduce exact indentation
// when rewriting around a whitespace run.
func TrailingIndent(fragment string) (string, error) {
	if strings.TrimSpace(fragment) != "" {
		return "", fmt.Errorf("%w: %q", ErrNotWhitespace, fragment)
	}

	normalized := newlineNormalizer.Replace(fragment)
	if i := strings.LastIndexByte(normalized, '\n'); i >= 0 {
		return normalized[i+1:], nil
	}

	return "", nil
}
