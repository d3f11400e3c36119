package listener

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	livev1 "wahlfang/contracts/gen/live/v1"
)

type publishCall struct {
	group string
	msg   livev1.Notification
}

type recordingBus struct {
	mu    sync.Mutex
	calls []publishCall
	err   error
}

func (b *recordingBus) Subscribe(context.Context, string, chan<- livev1.Notification) error {
	return nil
}

func (b *recordingBus) Unsubscribe(context.Context, string, chan<- livev1.Notification) error {
	return nil
}

func (b *recordingBus) Publish(ctx context.Context, group string, msg livev1.Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	b.calls = append(b.calls, publishCall{group: group, msg: msg})
	return b.err
}

func event(entity livev1.EntityType, id int64, change livev1.ChangeKind, sessionID int64, managers ...int64) livev1.ChangeEvent {
	return livev1.ChangeEvent{
		Entity:     entity,
		EntityID:   id,
		Change:     change,
		SessionID:  sessionID,
		ManagerIDs: managers,
		OccurredAt: time.Now(),
	}
}

func TestApplicationMutationPublishesOnceToSessionGroup(t *testing.T) {
	bus := &recordingBus{}
	listener := Listener{Bus: bus}

	ev := event(livev1.EntityApplication, 11, livev1.ChangeUpdated, 7, 3)
	ev.ElectionID = 42
	listener.AfterCommit(context.Background(), ev)

	if len(bus.calls) != 1 {
		t.Fatalf("expected exactly one publish, got %d", len(bus.calls))
	}
	call := bus.calls[0]
	if call.group != "session:7" {
		t.Fatalf("expected session:7, got %s", call.group)
	}
	if call.msg.Table != livev1.TableElection || call.msg.Type != "update" {
		t.Fatalf("unexpected notification %+v", call.msg)
	}
}

func TestEntityTablesAreMapped(t *testing.T) {
	cases := map[livev1.EntityType]livev1.Table{
		livev1.EntitySession:     livev1.TableSession,
		livev1.EntityElection:    livev1.TableElection,
		livev1.EntityVoter:       livev1.TableVoter,
		livev1.EntityApplication: livev1.TableElection,
	}
	for entity, want := range cases {
		bus := &recordingBus{}
		Listener{Bus: bus}.AfterCommit(context.Background(), event(entity, 1, livev1.ChangeCreated, 7))
		if len(bus.calls) != 1 || bus.calls[0].msg.Table != want {
			t.Fatalf("%s: expected one %s notification, got %+v", entity, want, bus.calls)
		}
	}
}

func TestDeletedElectionNotifiesSession(t *testing.T) {
	bus := &recordingBus{}
	Listener{Bus: bus}.AfterCommit(context.Background(), event(livev1.EntityElection, 42, livev1.ChangeDeleted, 7))
	if len(bus.calls) != 1 || bus.calls[0].group != "session:7" || bus.calls[0].msg.Table != livev1.TableElection {
		t.Fatalf("unexpected publishes %+v", bus.calls)
	}
}

func TestManagerFanoutAddsSessionID(t *testing.T) {
	bus := &recordingBus{}
	listener := Listener{Bus: bus, ManagerFanout: true}
	listener.AfterCommit(context.Background(), event(livev1.EntityVoter, 5, livev1.ChangeCreated, 7, 2, 3))

	if len(bus.calls) != 3 {
		t.Fatalf("expected session publish plus two manager publishes, got %d", len(bus.calls))
	}
	if bus.calls[0].group != "session:7" || bus.calls[0].msg.SessionID != 0 {
		t.Fatalf("unexpected session publish %+v", bus.calls[0])
	}
	for i, want := range []string{"manager:2", "manager:3"} {
		call := bus.calls[i+1]
		if call.group != want || call.msg.SessionID != 7 {
			t.Fatalf("expected %s with session 7, got %+v", want, call)
		}
	}
}

func TestFanoutDisabledSkipsManagers(t *testing.T) {
	bus := &recordingBus{}
	Listener{Bus: bus}.AfterCommit(context.Background(), event(livev1.EntityVoter, 5, livev1.ChangeCreated, 7, 2, 3))
	if len(bus.calls) != 1 {
		t.Fatalf("expected one publish, got %d", len(bus.calls))
	}
}

func TestPublishFailureIsSwallowed(t *testing.T) {
	bus := &recordingBus{err: errors.New("bus unavailable")}
	Listener{Bus: bus, ManagerFanout: true}.AfterCommit(
		context.Background(),
		event(livev1.EntitySession, 7, livev1.ChangeUpdated, 7, 1),
	)
	if len(bus.calls) != 2 {
		t.Fatalf("expected every group attempted despite failures, got %d", len(bus.calls))
	}
}

func TestCancelledWriterContextStillPublishes(t *testing.T) {
	bus := &recordingBus{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	Listener{Bus: bus}.AfterCommit(ctx, event(livev1.EntityVoter, 1, livev1.ChangeCreated, 7))
	if len(bus.calls) != 1 {
		t.Fatalf("expected publish after writer cancellation, got %d", len(bus.calls))
	}
}

func TestUnroutableEventIsDropped(t *testing.T) {
	bus := &recordingBus{}
	listener := Listener{Bus: bus}
	listener.AfterCommit(context.Background(), event("ballot", 1, livev1.ChangeCreated, 7))
	listener.AfterCommit(context.Background(), event(livev1.EntityVoter, 1, livev1.ChangeCreated, 0))
	if len(bus.calls) != 0 {
		t.Fatalf("expected no publishes, got %+v", bus.calls)
	}
}
