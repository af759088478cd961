package services

import "testing"

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"a@x.com", "a@x.com"},
		{"A@X.COM", "a@x.com"},
		{"  MixedCase@Example.org  ", "mixedcase@example.org"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.expected {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
