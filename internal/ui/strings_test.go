package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"shorter than limit", "bastion", 10, "bastion"},
		{"exactly at limit", "bastion", 7, "bastion"},
		{"over limit", "intermediate-ca-01", 10, "interme..."},
		{"tiny limit", "bastion", 2, "ba"},
		{"zero limit passes through", "bastion", 0, "bastion"},
		{"trims whitespace", "  bastion  ", 10, "bastion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.value, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"pending", "Pending"},
		{"code-signing", "Code Signing"},
		{"needs_review", "Needs Review"},
		{"", ""},
		{"  valid  ", "Valid"},
	}

	for _, tt := range tests {
		if got := titleCase(tt.value); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
