package crypto

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse" {
		t.Fatalf("expected hashed password")
	}
	if !hasher.Compare(hash, "correct horse") {
		t.Fatalf("expected password to match")
	}
	if hasher.Compare(hash, "wrong horse") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestAccessCodesUseUnambiguousAlphabet(t *testing.T) {
	tokens := RandomTokens{}
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := tokens.NewAccessCode()
		if err != nil {
			t.Fatalf("access code: %v", err)
		}
		if len(code) != accessCodeLength {
			t.Fatalf("expected %d chars, got %q", accessCodeLength, code)
		}
		if strings.ContainsAny(code, "0O1lI") {
			t.Fatalf("ambiguous character in %q", code)
		}
		seen[code] = struct{}{}
	}
	if len(seen) < 50 {
		t.Fatalf("expected unique access codes, got %d distinct", len(seen))
	}
}

func TestHashAccessCodeIsDeterministic(t *testing.T) {
	tokens := RandomTokens{}
	if tokens.HashAccessCode("abc") != tokens.HashAccessCode("abc") {
		t.Fatalf("expected stable hash")
	}
	if tokens.HashAccessCode("abc") == tokens.HashAccessCode("abd") {
		t.Fatalf("expected distinct hashes")
	}
}
