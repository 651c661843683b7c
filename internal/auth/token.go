package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// TokenLen is the length of a session token in hex characters.
// 16 random bytes give 128 bits of entropy, enough that collisions are
// negligible over the lifetime of the service.
const TokenLen = 32

// bearerMarker is the literal prefix stripped from Authorization headers.
const bearerMarker = "Bearer"

// GenerateToken produces a new opaque session token.
// The token carries no structure or embedded metadata; it is a pure
// lookup key.
func GenerateToken() (string, error) {
	raw := make([]byte, TokenLen/2)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// ExtractBearerToken pulls the token out of an Authorization header value.
// The original API stripped the word "Bearer" without requiring whitespace,
// so both "Bearer abc" and "Bearerabc" resolve to "abc". Returns an empty
// string when no token is present.
func ExtractBearerToken(headerValue string) string {
	value := strings.TrimSpace(headerValue)
	value = strings.TrimPrefix(value, bearerMarker)
	return strings.TrimSpace(value)
}
