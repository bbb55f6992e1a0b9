package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"orange", ColorOrange, true},
		{" Azure ", ColorAzure, true},
		{"MAGENTA", ColorMagenta, true},
		{"black", ColorBlack, true},
		{"plaid", ColorDefault, false},
		{"", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = %v, %v, expected %v, %v", tc.name, got, ok, tc.expected, tc.ok)
		}
	}
}
