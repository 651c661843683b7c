package auth

import (
	"regexp"
	"testing"
)

var tokenPattern = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestGenerateToken_Format(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if !tokenPattern.MatchString(token) {
		t.Errorf("Token should be %d hex chars, got: %s", TokenLen, token)
	}
}

func TestGenerateToken_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken failed: %v", err)
		}
		if seen[token] {
			t.Fatalf("Duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"standard form", "Bearer abc123", "abc123"},
		{"missing whitespace", "Bearerabc123", "abc123"},
		{"extra whitespace", "  Bearer   abc123  ", "abc123"},
		{"no marker", "abc123", "abc123"},
		{"empty", "", ""},
		{"marker only", "Bearer", ""},
		{"marker with space only", "Bearer ", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExtractBearerToken(tt.header); got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
