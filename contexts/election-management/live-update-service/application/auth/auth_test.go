package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"wahlfang/contexts/election-management/live-update-service/adapters/memory"
	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/live-update-service/domain/errors"
	"wahlfang/contexts/election-management/live-update-service/ports"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type fixedIDs struct{}

func (fixedIDs) NewID(context.Context) (string, error) { return "token-1", nil }

// mapSigner keeps issued claims in memory keyed by an opaque token.
type mapSigner struct {
	issued map[string]entities.TokenClaims
}

func (s *mapSigner) Sign(claims entities.TokenClaims) (string, error) {
	token := "signed-" + claims.TokenID + "-" + string(claims.Principal.Kind)
	s.issued[token] = claims
	return token, nil
}

func (s *mapSigner) Verify(token string) (entities.TokenClaims, error) {
	claims, ok := s.issued[token]
	if !ok {
		return entities.TokenClaims{}, domainerrors.ErrInvalidToken
	}
	return claims, nil
}

type failingStore struct {
	ports.CredentialStore
}

func (failingStore) VerifyVoterToken(context.Context, string) (ports.VoterRecord, bool, error) {
	return ports.VoterRecord{}, false, errors.New("db down")
}

func newStore() *memory.CredentialStore {
	store := memory.NewCredentialStore()
	store.AddVoter(1, 7, "ABCD-EFGH")
	store.AddManager(3, "alice", "Alice@Example.org", "correct-horse")
	store.AddSpectatorToken(7, "spectate-7")
	return store
}

func TestResolveVoterAccessCode(t *testing.T) {
	resolver := Resolver{Store: newStore()}
	principal, err := resolver.Resolve(context.Background(), entities.AccessCode(" ABCD-EFGH "))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if principal != entities.VoterPrincipal(1, 7) {
		t.Fatalf("unexpected principal %+v", principal)
	}
}

func TestResolveManagerByUsernameOrEmail(t *testing.T) {
	resolver := Resolver{Store: newStore()}
	for _, login := range []string{"alice", "alice@example.org"} {
		principal, err := resolver.Resolve(context.Background(), entities.Password(login, "correct-horse"))
		if err != nil {
			t.Fatalf("resolve %s: %v", login, err)
		}
		if principal != entities.ManagerPrincipal(3) {
			t.Fatalf("unexpected principal %+v", principal)
		}
	}
}

func TestResolveSpectatorToken(t *testing.T) {
	resolver := Resolver{Store: newStore()}
	principal, err := resolver.Resolve(context.Background(), entities.SpectatorToken("spectate-7"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if principal != entities.SpectatorPrincipal(7) {
		t.Fatalf("unexpected principal %+v", principal)
	}
}

func TestResolveFailuresDoNotNameTheField(t *testing.T) {
	resolver := Resolver{Store: newStore()}
	for name, cred := range map[string]entities.Credential{
		"unknown code":      entities.AccessCode("nope"),
		"empty code":        entities.AccessCode(""),
		"wrong password":    entities.Password("alice", "wrong"),
		"unknown manager":   entities.Password("bob", "correct-horse"),
		"missing login":     entities.Password("", "correct-horse"),
		"unknown spectator": entities.SpectatorToken("spectate-8"),
		"unknown kind":      {Kind: "cookie", Secret: "x"},
		"bearer no signer":  entities.Bearer("anything"),
	} {
		_, err := resolver.Resolve(context.Background(), cred)
		if !errors.Is(err, domainerrors.ErrInvalidCredential) {
			t.Fatalf("%s: expected invalid credential, got %v", name, err)
		}
	}
}

func TestResolveRevokedVoter(t *testing.T) {
	store := newStore()
	store.RevokeVoter(1)
	_, err := Resolver{Store: store}.Resolve(context.Background(), entities.AccessCode("ABCD-EFGH"))
	if !errors.Is(err, domainerrors.ErrRevoked) {
		t.Fatalf("expected revoked, got %v", err)
	}
}

func TestResolveStoreFailureIsReturned(t *testing.T) {
	_, err := Resolver{Store: failingStore{}}.Resolve(context.Background(), entities.AccessCode("x"))
	if err == nil || errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func newTokenService(store *memory.CredentialStore) (TokenService, *mapSigner) {
	signer := &mapSigner{issued: map[string]entities.TokenClaims{}}
	resolver := Resolver{Store: store, Tokens: signer}
	return TokenService{
		Resolver: resolver,
		Signer:   signer,
		Clock:    fixedClock{at: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		IDs:      fixedIDs{},
		TTL:      time.Hour,
	}, signer
}

func TestIssueAndResolveBearer(t *testing.T) {
	store := newStore()
	tokens, _ := newTokenService(store)

	issued, err := tokens.Issue(context.Background(), entities.AccessCode("ABCD-EFGH"), entities.PrincipalVoter)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if issued.UserType != entities.PrincipalVoter {
		t.Fatalf("expected voter user type, got %s", issued.UserType)
	}
	if !issued.ExpiresAt.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected expiry %s", issued.ExpiresAt)
	}

	principal, err := tokens.Resolver.Resolve(context.Background(), entities.Bearer(issued.Token))
	if err != nil {
		t.Fatalf("resolve bearer: %v", err)
	}
	if principal != entities.VoterPrincipal(1, 7) {
		t.Fatalf("unexpected principal %+v", principal)
	}
}

func TestBearerRechecksVoterRevocation(t *testing.T) {
	store := newStore()
	tokens, _ := newTokenService(store)
	issued, err := tokens.Issue(context.Background(), entities.AccessCode("ABCD-EFGH"), entities.PrincipalVoter)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	store.RevokeVoter(1)
	if _, err := tokens.Resolver.Resolve(context.Background(), entities.Bearer(issued.Token)); !errors.Is(err, domainerrors.ErrRevoked) {
		t.Fatalf("expected revoked, got %v", err)
	}

	store.DeleteVoter(1)
	if _, err := tokens.Resolver.Resolve(context.Background(), entities.Bearer(issued.Token)); !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential for deleted voter, got %v", err)
	}
}

func TestBearerRechecksSpectatorSession(t *testing.T) {
	store := newStore()
	tokens, _ := newTokenService(store)
	issued, err := tokens.Issue(context.Background(), entities.SpectatorToken("spectate-7"), entities.PrincipalSpectator)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	principal, err := tokens.Resolver.Resolve(context.Background(), entities.Bearer(issued.Token))
	if err != nil {
		t.Fatalf("resolve bearer: %v", err)
	}
	if principal != entities.SpectatorPrincipal(7) {
		t.Fatalf("unexpected principal %+v", principal)
	}

	store.DeleteSession(7)
	if _, err := tokens.Resolver.Resolve(context.Background(), entities.Bearer(issued.Token)); !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential for deleted session, got %v", err)
	}
}

func TestIssueRejectsKindMismatch(t *testing.T) {
	tokens, _ := newTokenService(newStore())
	_, err := tokens.Issue(context.Background(), entities.Password("alice", "correct-horse"), entities.PrincipalVoter)
	if !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential, got %v", err)
	}
	_, err = tokens.Issue(context.Background(), entities.Bearer("x"), entities.PrincipalManager)
	if !errors.Is(err, domainerrors.ErrUnsupportedCredential) {
		t.Fatalf("expected unsupported credential, got %v", err)
	}
}

func TestIssueManagerToken(t *testing.T) {
	tokens, signer := newTokenService(newStore())
	issued, err := tokens.Issue(context.Background(), entities.Password("alice", "correct-horse"), entities.PrincipalManager)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims := signer.issued[issued.Token]
	if claims.Principal != entities.ManagerPrincipal(3) || claims.TokenID != "token-1" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}
