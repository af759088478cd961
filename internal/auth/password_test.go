package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt hash prefix, got %q", hash[:4])
	}

	if !CheckPassword(hash, "secret1") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "secret2") {
		t.Error("wrong password should not verify")
	}
	if CheckPassword(hash, "") {
		t.Error("empty password should not verify")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "whatever") {
		t.Error("garbage hash should never verify")
	}
}
