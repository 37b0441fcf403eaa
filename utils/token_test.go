package utils

import "testing"

func TestNewAnonTokenShape(t *testing.T) {
	token, err := NewAnonToken()
	if err != nil {
		t.Fatalf("NewAnonToken: %v", err)
	}
	if len(token) != 16 {
		t.Fatalf("expected 16 character token, got %d (%q)", len(token), token)
	}
}

func TestNewAnonTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token, err := NewAnonToken()
		if err != nil {
			t.Fatalf("NewAnonToken: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token after %d draws: %q", i, token)
		}
		seen[token] = true
	}
}
