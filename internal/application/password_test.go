package application

import (
	"errors"
	"strings"
	"testing"
)

func TestCreatePasswordHashAndVerify(t *testing.T) {
	hash, err := CreatePasswordHash("correct horse battery staple")
	if err != nil {
		t.Fatalf("CreatePasswordHash failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("expected argon2id hash, got %q", hash)
	}

	if err := VerifyPassword(hash, "correct horse battery staple"); err != nil {
		t.Fatalf("VerifyPassword rejected matching password: %v", err)
	}

	err = VerifyPassword(hash, "wrong password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for mismatch, got %v", err)
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := CreatePasswordHash("same input")
	if err != nil {
		t.Fatalf("CreatePasswordHash failed: %v", err)
	}
	second, err := CreatePasswordHash("same input")
	if err != nil {
		t.Fatalf("CreatePasswordHash failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password")
	}
}

func TestIsHashedCredential(t *testing.T) {
	hash, err := CreatePasswordHash("pw")
	if err != nil {
		t.Fatalf("CreatePasswordHash failed: %v", err)
	}
	if !isHashedCredential(hash) {
		t.Errorf("expected hash to be recognised")
	}
	if isHashedCredential("plaintext") {
		t.Errorf("expected plaintext to be rejected")
	}
	if isHashedCredential("") {
		t.Errorf("expected empty credential to be rejected")
	}
}
