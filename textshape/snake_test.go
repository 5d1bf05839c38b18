package textshape

import "testing"

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"FooBar", "foo_bar"},
		{"fooBar", "foo_bar"},
		{"foo", "foo"},
		{"Foo", "foo"},

		// Acronym handling
		{"simpleXMLElement", "simple_xml_element"},
		{"XMLParser", "xml_parser"},
		{"getHTTPResponse", "get_http_response"},
		{"HTML", "html"},

		// Already snake, or nothing to do
		{"already_snake", "already_snake"},
		{"lowercase", "lowercase"},

		// Edge cases
		{"", ""},
		{"A", "a"},
		{"AB", "ab"},
		{"ABc", "a_bc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CamelToSnake(tt.input); got != tt.expected {
				t.Errorf("CamelToSnake(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
