package textshape

import (
	"strings"
	"unicode"
)

// CamelToSnake converts a camelCase or PascalCase identifier to snake_case.
// An underscore is inserted before an uppercase rune whose predecessor is not
// uppercase, and between two uppercase runes where the second one starts a
// new word (it is followed by a lowercase rune). The result is lowercased.
//
// Examples:
//   - "FooBar" -> "foo_bar"
//   - "simpleXMLElement" -> "simple_xml_element"
//   - "already_snake" -> "already_snake"
func CamelToSnake(s string) string {
	runes := []rune(s)

	var b strings.Builder

	b.Grow(len(s) + len(s)/2)

	for i, r := range runes {
		if i > 0 && boundaryBefore(runes, i) {
			b.WriteRune('_')
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// boundaryBefore reports whether a word boundary falls immediately before
// position i. Never true for i == 0.
func boundaryBefore(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	// Transition from non-uppercase into uppercase, e.g. "fooBar".
	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	// End of an acronym run: "XMLElement" splits before the 'E' because the
	// following rune is lowercase.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
