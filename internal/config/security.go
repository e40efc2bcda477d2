package config

import (
	"errors"
	"fmt"
	"strings"
)

// MinJWTSecretLength is 256 bits, the HS256 key size.
const MinJWTSecretLength = 32

// weakSecretWords are rejected when a secret is built only from them and
// separators, optionally followed by digits ("secretsecret...123").
var weakSecretWords = []string{"secret", "password", "changeme", "test", "admin", "default", "jwt"}

// ValidateJWTSecret checks JWT_SECRET before any token is signed with it.
func ValidateJWTSecret(secret string) error {
	if secret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if len(secret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", MinJWTSecretLength)
	}
	if isWeakSecret(secret) {
		return errors.New("JWT_SECRET must not be a common weak value")
	}
	return nil
}

func isWeakSecret(secret string) bool {
	s := strings.ToLower(strings.TrimRight(secret, "0123456789"))
	if s == "" || strings.Count(s, s[:1]) == len(s) {
		return true
	}
	for _, w := range weakSecretWords {
		s = strings.ReplaceAll(s, w, "")
	}
	return strings.Trim(s, "-_ ") == ""
}
