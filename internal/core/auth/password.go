// Package auth holds the credential and token primitives shared by the
// service layer and the HTTP middleware.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost matches the work factor the accounts were originally created with.
const hashCost = 10

// HashPassword derives a bcrypt digest from the plaintext. The error is
// propagated so a failed hash can never be stored as an empty digest.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the stored digest.
// A malformed digest yields false rather than an error, so callers treat
// "no match" and "corrupt record" uniformly as an authentication failure.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
