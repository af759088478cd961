package repositories

import "testing"

func TestSearchPattern(t *testing.T) {
	tests := []struct {
		query    string
		expected string
	}{
		{"tech", "%tech%"},
		{"", "%%"},
		{"Tech Reviews", "%Tech Reviews%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := SearchPattern(tt.query); got != tt.expected {
				t.Errorf("SearchPattern(%q) = %q, want %q", tt.query, got, tt.expected)
			}
		})
	}
}
