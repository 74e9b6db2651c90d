package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_ProducesVerifiableDigest(t *testing.T) {
	digest, err := HashPassword("S3cret!pw")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if digest == "" || digest == "S3cret!pw" {
		t.Fatalf("expected a non-empty hashed digest, got %q", digest)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte("S3cret!pw")); err != nil {
		t.Fatalf("digest does not match password: %v", err)
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	a, err := HashPassword("S3cret!pw")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	b, err := HashPassword("S3cret!pw")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if a == b {
		t.Fatalf("expected salted digests to differ")
	}
}

func TestVerifyPassword(t *testing.T) {
	digest, err := HashPassword("S3cret!pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !VerifyPassword("S3cret!pw", digest) {
		t.Fatalf("expected correct password to verify")
	}
	if VerifyPassword("wrong", digest) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	// A corrupt record must look exactly like a failed match, never panic
	// or surface an error.
	for _, digest := range []string{"", "not-a-bcrypt-digest", strings.Repeat("x", 60)} {
		if VerifyPassword("S3cret!pw", digest) {
			t.Fatalf("expected malformed digest %q to fail verification", digest)
		}
	}
}
