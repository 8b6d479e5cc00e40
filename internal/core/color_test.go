package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{" Pink ", ColorPink, true},
		{"CYAN", ColorCyan, true},
		{"navy", ColorNavy, true},
		{"chartreuse", ColorDefault, false},
		{"", ColorDefault, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseColor(tc.in)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.expected, tc.ok)
			}
		})
	}
}
