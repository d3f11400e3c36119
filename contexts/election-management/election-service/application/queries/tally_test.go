package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"wahlfang/contexts/election-management/election-service/adapters/memory"
	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/domain/services"
)

type tallyFixture struct {
	store    *memory.Store
	owner    entities.Manager
	stranger entities.Manager
	session  entities.Session
	election entities.Election
	apps     []entities.Application
}

// newTallyFixture seeds one election with max_winners=2 and applications
// A1, A2, A3 holding 5, 9 and 3 accept votes in insertion order.
func newTallyFixture(t *testing.T) tallyFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	owner, err := store.CreateManager(ctx, entities.Manager{Username: "owner", Email: "owner@example.org"})
	if err != nil {
		t.Fatalf("create manager: %v", err)
	}
	stranger, err := store.CreateManager(ctx, entities.Manager{Username: "stranger", Email: "stranger@example.org"})
	if err != nil {
		t.Fatalf("create manager: %v", err)
	}
	session, err := store.CreateSession(ctx, entities.Session{Title: "S", ManagerIDs: []int64{owner.ManagerID}, SpectatorToken: "watch-token"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	maxWinners := 2
	election, err := store.CreateElection(ctx, entities.Election{
		SessionID:   session.SessionID,
		Title:       "E",
		Status:      entities.ElectionStatusClosed,
		MaxWinners:  &maxWinners,
		Publication: entities.PublicationUnpublished,
	})
	if err != nil {
		t.Fatalf("create election: %v", err)
	}
	var apps []entities.Application
	for i, accept := range []int{5, 9, 3} {
		app, err := store.CreateApplication(ctx, entities.Application{
			ElectionID:  election.ElectionID,
			DisplayName: []string{"A1", "A2", "A3"}[i],
			CreatedAt:   time.Now(),
		})
		if err != nil {
			t.Fatalf("create application: %v", err)
		}
		store.SetVotes(app.ApplicationID, accept, 0, 0)
		apps = append(apps, app)
	}
	return tallyFixture{store: store, owner: owner, stranger: stranger, session: session, election: election, apps: apps}
}

func (f tallyFixture) publish(t *testing.T) {
	t.Helper()
	f.election.Publication = entities.PublicationPublished
	if err := f.store.UpdateElection(context.Background(), f.election); err != nil {
		t.Fatalf("publish: %v", err)
	}
}

func TestSummarizeScenarioInsertionOrderPolicy(t *testing.T) {
	f := newTallyFixture(t)
	uc := TallyUseCase{Repo: f.store, Policy: services.WinnerPolicyInsertionOrder}

	items, err := uc.Summarize(context.Background(), entities.ManagerActor(f.owner.ManagerID), f.election.ElectionID)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	assertScenarioOrder(t, items)
	// legacy policy: the first two entries win, A2's higher count is irrelevant
	if !items[0].Elected || !items[1].Elected || items[2].Elected {
		t.Fatalf("expected A1 and A2 elected, got %+v", items)
	}
}

func TestSummarizeScenarioVoteCountPolicy(t *testing.T) {
	f := newTallyFixture(t)
	f.store.SetVotes(f.apps[0].ApplicationID, 1, 0, 0)
	uc := TallyUseCase{Repo: f.store, Policy: services.WinnerPolicyVoteCount}

	items, err := uc.Summarize(context.Background(), entities.ManagerActor(f.owner.ManagerID), f.election.ElectionID)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	// A1=1, A2=9, A3=3: vote count elects A2 and A3 although A1 comes first
	if items[0].Elected || !items[1].Elected || !items[2].Elected {
		t.Fatalf("expected A2 and A3 elected by vote count, got %+v", items)
	}
}

func TestSummarizeDefaultsToInsertionOrder(t *testing.T) {
	f := newTallyFixture(t)
	uc := TallyUseCase{Repo: f.store}

	items, err := uc.Summarize(context.Background(), entities.ManagerActor(f.owner.ManagerID), f.election.ElectionID)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !items[0].Elected || items[2].Elected {
		t.Fatalf("expected insertion order default, got %+v", items)
	}
}

func assertScenarioOrder(t *testing.T, items []entities.ApplicationSummary) {
	t.Helper()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []struct {
		name   string
		accept int
	}{{"A1", 5}, {"A2", 9}, {"A3", 3}} {
		if items[i].DisplayName != want.name || items[i].VotesAccept != want.accept {
			t.Fatalf("item %d: expected %s/%d, got %+v", i, want.name, want.accept, items[i])
		}
	}
}

func TestSummarizeUnpublishedGate(t *testing.T) {
	f := newTallyFixture(t)
	uc := TallyUseCase{Repo: f.store, Policy: services.WinnerPolicyInsertionOrder}
	ctx := context.Background()
	voter := entities.VoterActor(99, f.session.SessionID)
	spectator := entities.SpectatorActor(f.session.SessionID)

	if _, err := uc.Summarize(ctx, voter, f.election.ElectionID); !errors.Is(err, domainerrors.ErrResultsNotPublished) {
		t.Fatalf("expected voter rejected before publication, got %v", err)
	}
	if _, err := uc.Summarize(ctx, spectator, f.election.ElectionID); !errors.Is(err, domainerrors.ErrResultsNotPublished) {
		t.Fatalf("expected spectator rejected before publication, got %v", err)
	}
	if _, err := uc.Summarize(ctx, entities.ManagerActor(f.owner.ManagerID), f.election.ElectionID); err != nil {
		t.Fatalf("expected owning manager allowed, got %v", err)
	}
	if _, err := uc.Summarize(ctx, entities.ManagerActor(f.stranger.ManagerID), f.election.ElectionID); !errors.Is(err, domainerrors.ErrElectionNotFound) {
		t.Fatalf("expected foreign manager to see not found, got %v", err)
	}
}

func TestSummarizePublishedIsIdenticalForEveryone(t *testing.T) {
	f := newTallyFixture(t)
	f.publish(t)
	uc := TallyUseCase{Repo: f.store, Policy: services.WinnerPolicyInsertionOrder}
	ctx := context.Background()

	managerView, err := uc.Summarize(ctx, entities.ManagerActor(f.owner.ManagerID), f.election.ElectionID)
	if err != nil {
		t.Fatalf("manager summarize: %v", err)
	}
	for _, actor := range []entities.Actor{
		entities.VoterActor(99, f.session.SessionID),
		entities.SpectatorActor(f.session.SessionID),
	} {
		view, err := uc.Summarize(ctx, actor, f.election.ElectionID)
		if err != nil {
			t.Fatalf("%s summarize: %v", actor.Kind, err)
		}
		if len(view) != len(managerView) {
			t.Fatalf("%s view differs in length", actor.Kind)
		}
		for i := range view {
			if view[i] != managerView[i] {
				t.Fatalf("%s view differs at %d: %+v vs %+v", actor.Kind, i, view[i], managerView[i])
			}
		}
	}

	otherSession := entities.VoterActor(100, f.session.SessionID+1000)
	if _, err := uc.Summarize(ctx, otherSession, f.election.ElectionID); !errors.Is(err, domainerrors.ErrElectionNotFound) {
		t.Fatalf("expected voter of another session to see not found, got %v", err)
	}
}

func TestSummarizeEmptyAndDeletedElection(t *testing.T) {
	f := newTallyFixture(t)
	ctx := context.Background()
	uc := TallyUseCase{Repo: f.store}
	empty, err := f.store.CreateElection(ctx, entities.Election{SessionID: f.session.SessionID, Title: "Empty", Publication: entities.PublicationUnpublished})
	if err != nil {
		t.Fatalf("create election: %v", err)
	}

	items, err := uc.Summarize(ctx, entities.ManagerActor(f.owner.ManagerID), empty.ElectionID)
	if err != nil {
		t.Fatalf("summarize empty: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty sequence, got %#v", items)
	}

	if err := f.store.DeleteElection(ctx, f.election.ElectionID); err != nil {
		t.Fatalf("delete election: %v", err)
	}
	if _, err := uc.Summarize(ctx, entities.ManagerActor(f.owner.ManagerID), f.election.ElectionID); !errors.Is(err, domainerrors.ErrElectionNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
