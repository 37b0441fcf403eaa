package utils

import "testing"

func TestSanitizePreservesPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ampersand", "AT&T", "AT&T"},
		{"comparisons", "x < y && y > z", "x < y && y > z"},
		{"heart", "a & b <3", "a & b <3"},
		{"quotes", `she said "hi" & left`, `she said "hi" & left`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeStripsMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tags", "<b>bold</b> move", "bold move"},
		{"script", "<script>alert(1)</script>hi", "hi"},
		{"anchor", `<a href="https://evil.example">link</a> text`, "link text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
