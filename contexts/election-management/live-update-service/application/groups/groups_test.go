package groups

import (
	"errors"
	"strings"
	"testing"

	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/live-update-service/domain/errors"
)

func TestGroupOfVoterIsSessionGroup(t *testing.T) {
	for _, tc := range []struct {
		voterID   int64
		sessionID int64
		want      string
	}{
		{voterID: 1, sessionID: 7, want: "session:7"},
		{voterID: 99, sessionID: 7, want: "session:7"},
		{voterID: 7, sessionID: 3, want: "session:3"},
	} {
		got, err := GroupOf(entities.VoterPrincipal(tc.voterID, tc.sessionID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, got)
		}
		if strings.HasPrefix(got, "manager:") {
			t.Fatalf("voter resolved to manager group %s", got)
		}
	}
}

func TestGroupOfManagerIsPrivateGroup(t *testing.T) {
	got, err := GroupOf(entities.ManagerPrincipal(12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "manager:12" {
		t.Fatalf("expected manager:12, got %s", got)
	}
}

func TestGroupOfSpectatorSharesSessionGroup(t *testing.T) {
	got, err := GroupOf(entities.SpectatorPrincipal(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "session:7" {
		t.Fatalf("expected session:7, got %s", got)
	}
}

func TestGroupOfIsDeterministic(t *testing.T) {
	principal := entities.VoterPrincipal(4, 9)
	first, _ := GroupOf(principal)
	for i := 0; i < 10; i++ {
		again, _ := GroupOf(principal)
		if again != first {
			t.Fatalf("expected stable group %s, got %s", first, again)
		}
	}
}

func TestGroupOfRejectsIncompletePrincipal(t *testing.T) {
	for _, principal := range []entities.Principal{
		{},
		{Kind: entities.PrincipalVoter, VoterID: 1},
		{Kind: entities.PrincipalManager},
		{Kind: "admin", ManagerID: 1},
	} {
		if _, err := GroupOf(principal); !errors.Is(err, domainerrors.ErrInvalidPrincipal) {
			t.Fatalf("expected invalid principal for %+v, got %v", principal, err)
		}
	}
}

func TestAuthorizeRejectsCrossKindAccess(t *testing.T) {
	voter := entities.VoterPrincipal(1, 7)
	spectator := entities.SpectatorPrincipal(7)
	manager := entities.ManagerPrincipal(3)

	if err := Authorize(voter, entities.AudienceVoter); err != nil {
		t.Fatalf("voter on voter endpoint: %v", err)
	}
	if err := Authorize(spectator, entities.AudienceVoter); err != nil {
		t.Fatalf("spectator on voter endpoint: %v", err)
	}
	if err := Authorize(manager, entities.AudienceManager); err != nil {
		t.Fatalf("manager on manager endpoint: %v", err)
	}
	if err := Authorize(voter, entities.AudienceManager); !errors.Is(err, domainerrors.ErrWrongAudience) {
		t.Fatalf("expected wrong audience for voter, got %v", err)
	}
	if err := Authorize(spectator, entities.AudienceManager); !errors.Is(err, domainerrors.ErrWrongAudience) {
		t.Fatalf("expected wrong audience for spectator, got %v", err)
	}
	if err := Authorize(manager, entities.AudienceVoter); !errors.Is(err, domainerrors.ErrWrongAudience) {
		t.Fatalf("expected wrong audience for manager, got %v", err)
	}
}
