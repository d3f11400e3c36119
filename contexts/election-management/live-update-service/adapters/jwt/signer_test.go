package jwtadapter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/live-update-service/domain/errors"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestSignerRoundTripKeepsPrincipal(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	signer, err := NewSigner(testSecret, "", fixedClock(now))
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	for _, principal := range []entities.Principal{
		entities.VoterPrincipal(5, 7),
		entities.ManagerPrincipal(3),
		entities.SpectatorPrincipal(7),
	} {
		token, err := signer.Sign(entities.TokenClaims{
			TokenID:   "tok-1",
			Principal: principal,
			IssuedAt:  now,
			ExpiresAt: now.Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("sign %s: %v", principal.Kind, err)
		}
		got, err := signer.Verify(token)
		if err != nil {
			t.Fatalf("verify %s: %v", principal.Kind, err)
		}
		if got.Principal != principal {
			t.Fatalf("expected %+v, got %+v", principal, got.Principal)
		}
		if got.TokenID != "tok-1" || !got.ExpiresAt.Equal(now.Add(time.Hour)) {
			t.Fatalf("unexpected claims %+v", got)
		}
	}
}

func TestSignerWritesUserTypeClaim(t *testing.T) {
	now := time.Now()
	signer, _ := NewSigner(testSecret, "", fixedClock(now))
	token, err := signer.Sign(entities.TokenClaims{
		Principal: entities.ManagerPrincipal(3),
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		t.Fatalf("parse unverified: %v", err)
	}
	mapped := parsed.Claims.(jwt.MapClaims)
	if mapped["user_type"] != "manager" {
		t.Fatalf("expected user_type manager, got %v", mapped["user_type"])
	}
}

func TestSignerRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	signer, _ := NewSigner(testSecret, "", fixedClock(issued))
	token, err := signer.Sign(entities.TokenClaims{
		Principal: entities.VoterPrincipal(1, 2),
		IssuedAt:  issued,
		ExpiresAt: issued.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	later, _ := NewSigner(testSecret, "", fixedClock(issued.Add(2*time.Minute)))
	if _, err := later.Verify(token); !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestSignerRejectsForeignSecretAndTampering(t *testing.T) {
	now := time.Now()
	signer, _ := NewSigner(testSecret, "", fixedClock(now))
	other, _ := NewSigner([]byte("another-secret-of-enough-length"), "", fixedClock(now))

	token, _ := other.Sign(entities.TokenClaims{
		Principal: entities.ManagerPrincipal(1),
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	})
	if _, err := signer.Verify(token); !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token for foreign secret, got %v", err)
	}
	if _, err := signer.Verify(strings.TrimSuffix(token, token[len(token)-2:])); !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token for truncated signature, got %v", err)
	}
}

func TestSignerRejectsNoneAlgorithm(t *testing.T) {
	now := time.Now()
	signer, _ := NewSigner(testSecret, "", fixedClock(now))
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims{
		UserType: "manager",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    DefaultIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := signer.Verify(token); !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestNewSignerRequiresSecret(t *testing.T) {
	if _, err := NewSigner([]byte("short"), "", nil); err == nil {
		t.Fatalf("expected error for short secret")
	}
}
