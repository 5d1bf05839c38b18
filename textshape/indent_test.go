package textshape

import (
	"errors"
	"strings"
	"testing"
)

func TestTrailingIndent(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{"after last newline", "\n\n  \t", "  \t"},
		{"no newline", "", ""},
		{"spaces without newline", "   ", ""},
		{"crlf normalized", "\r\n    ", "    "},
		{"lone cr normalized", " \r\t", "\t"},
		{"newline last", "  \n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TrailingIndent(tt.fragment)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if got != tt.expected {
				t.Errorf("TrailingIndent(%q) = %q, want %q", tt.fragment, got, tt.expected)
			}
		})
	}
}

func TestTrailingIndent_RejectsNonWhitespace(t *testing.T) {
	_, err := TrailingIndent("  x\n")
	if !errors.Is(err, ErrNotWhitespace) {
		t.Fatalf("expected ErrNotWhitespace, got %v", err)
	}

	// The error names the offending content.
	if !strings.Contains(err.Error(), "x") {
		t.Fatalf("expected error to include the fragment, got %q", err.Error())
	}
}
