package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wahlfang/contexts/election-management/live-update-service/adapters/memory"
	"wahlfang/contexts/election-management/live-update-service/application/auth"
	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/live-update-service/domain/errors"
	livev1 "wahlfang/contracts/gen/live/v1"
	"wahlfang/internal/platform/messaging"
)

type fakeConn struct {
	inbound chan struct{}
	sent    chan entities.OutboundMessage
	sendErr error

	mu        sync.Mutex
	closed    bool
	closeCode int
	reason    string
	gone      chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		inbound: make(chan struct{}),
		sent:    make(chan entities.OutboundMessage, 16),
		gone:    make(chan struct{}),
	}
}

func (c *fakeConn) Receive() error {
	select {
	case <-c.inbound:
		return nil
	case <-c.gone:
		return io.EOF
	}
}

func (c *fakeConn) Send(_ context.Context, msg entities.OutboundMessage) error {
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent <- msg
	return nil
}

func (c *fakeConn) Close(code int, reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.closeCode = code
	c.reason = reason
	close(c.gone)
	return nil
}

// hangUp simulates the peer disconnecting.
func (c *fakeConn) hangUp() {
	_ = c.Close(entities.CloseNormal, "")
}

func (c *fakeConn) closeState() (bool, int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed, c.closeCode, c.reason
}

type fixture struct {
	bus     *messaging.MemoryBus
	store   *memory.CredentialStore
	gateway *Gateway
}

func newFixture() fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewCredentialStore()
	store.AddVoter(1, 7, "voter-code")
	store.AddVoter(2, 8, "other-session")
	store.AddManager(3, "alice", "alice@example.org", "correct-horse")
	store.AddSpectatorToken(7, "spectate-7")

	bus := messaging.NewMemoryBus(logger)
	gw := New(
		auth.Resolver{Store: store, Logger: logger},
		bus,
		memory.SystemClock{},
		memory.UUIDGenerator{},
		4,
		logger,
	)
	return fixture{bus: bus, store: store, gateway: gw}
}

func (f fixture) serve(ctx context.Context, conn *fakeConn, cred entities.Credential, audience entities.Audience) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- f.gateway.Serve(ctx, conn, cred, audience)
	}()
	return done
}

func waitSinks(t *testing.T, bus *messaging.MemoryBus, group string, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return bus.NumSinks(group) == want
	}, time.Second, time.Millisecond)
}

func notify(table livev1.Table, group string, sessionID int64) livev1.Notification {
	return livev1.Notification{Type: livev1.NotificationTypeUpdate, Table: table, GroupKey: group, SessionID: sessionID}
}

func TestVoterConnectionReceivesSessionUpdates(t *testing.T) {
	f := newFixture()
	conn := newFakeConn()
	done := f.serve(context.Background(), conn, entities.AccessCode("voter-code"), entities.AudienceVoter)
	waitSinks(t, f.bus, "session:7", 1)
	require.EqualValues(t, 1, f.gateway.Active())

	require.NoError(t, f.bus.Publish(context.Background(), "session:8", notify(livev1.TableVoter, "session:8", 0)))
	require.NoError(t, f.bus.Publish(context.Background(), "session:7", notify(livev1.TableVoter, "session:7", 0)))

	select {
	case msg := <-conn.sent:
		require.Equal(t, entities.OutboundMessage{Type: "update", Table: "voter"}, msg)
	case <-time.After(time.Second):
		t.Fatal("expected a voter notification")
	}
	require.Empty(t, conn.sent)

	conn.hangUp()
	require.NoError(t, <-done)
	require.Zero(t, f.bus.NumSinks("session:7"))
	require.Zero(t, f.gateway.Active())
}

func TestManagerConnectionGetsSessionID(t *testing.T) {
	f := newFixture()
	conn := newFakeConn()
	done := f.serve(context.Background(), conn, entities.Password("alice", "correct-horse"), entities.AudienceManager)
	waitSinks(t, f.bus, "manager:3", 1)

	require.NoError(t, f.bus.Publish(context.Background(), "manager:3", notify(livev1.TableElection, "manager:3", 7)))
	select {
	case msg := <-conn.sent:
		require.Equal(t, entities.OutboundMessage{Type: "update", Table: "election", SessionID: 7}, msg)
	case <-time.After(time.Second):
		t.Fatal("expected a manager notification")
	}

	conn.hangUp()
	require.NoError(t, <-done)
}

func TestAuthenticationFailureClosesBeforeSubscribe(t *testing.T) {
	f := newFixture()
	conn := newFakeConn()

	err := f.gateway.Serve(context.Background(), conn, entities.AccessCode("wrong"), entities.AudienceVoter)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredential)

	closed, code, reason := conn.closeState()
	require.True(t, closed)
	require.Equal(t, entities.CloseAuthFailed, code)
	require.Equal(t, entities.CloseAuthFailedText, reason)
	require.Zero(t, f.bus.NumGroups())
}

func TestWrongAudienceLooksLikeAuthFailure(t *testing.T) {
	f := newFixture()

	voterConn := newFakeConn()
	err := f.gateway.Serve(context.Background(), voterConn, entities.AccessCode("voter-code"), entities.AudienceManager)
	require.ErrorIs(t, err, domainerrors.ErrWrongAudience)

	badConn := newFakeConn()
	_ = f.gateway.Serve(context.Background(), badConn, entities.Password("alice", "nope"), entities.AudienceManager)

	_, voterCode, voterReason := voterConn.closeState()
	_, badCode, badReason := badConn.closeState()
	require.Equal(t, badCode, voterCode)
	require.Equal(t, badReason, voterReason)

	managerConn := newFakeConn()
	err = f.gateway.Serve(context.Background(), managerConn, entities.Password("alice", "correct-horse"), entities.AudienceVoter)
	require.ErrorIs(t, err, domainerrors.ErrWrongAudience)
	require.Zero(t, f.bus.NumGroups())
}

func TestRevokedVoterIsRejected(t *testing.T) {
	f := newFixture()
	f.store.RevokeVoter(1)
	conn := newFakeConn()
	err := f.gateway.Serve(context.Background(), conn, entities.AccessCode("voter-code"), entities.AudienceVoter)
	require.ErrorIs(t, err, domainerrors.ErrRevoked)
	_, code, _ := conn.closeState()
	require.Equal(t, entities.CloseAuthFailed, code)
}

func TestSpectatorJoinsSessionGroup(t *testing.T) {
	f := newFixture()
	conn := newFakeConn()
	done := f.serve(context.Background(), conn, entities.SpectatorToken("spectate-7"), entities.AudienceVoter)
	waitSinks(t, f.bus, "session:7", 1)
	conn.hangUp()
	require.NoError(t, <-done)
}

func TestNoDeliveryAfterClose(t *testing.T) {
	f := newFixture()
	conn := newFakeConn()
	done := f.serve(context.Background(), conn, entities.AccessCode("voter-code"), entities.AudienceVoter)
	waitSinks(t, f.bus, "session:7", 1)

	conn.hangUp()
	require.NoError(t, <-done)

	for i := 0; i < 5; i++ {
		require.NoError(t, f.bus.Publish(context.Background(), "session:7", notify(livev1.TableElection, "session:7", 0)))
	}
	require.Empty(t, conn.sent)
}

func TestContextCancelClosesGoingAway(t *testing.T) {
	f := newFixture()
	conn := newFakeConn()
	ctx, cancel := context.WithCancel(context.Background())
	done := f.serve(ctx, conn, entities.AccessCode("voter-code"), entities.AudienceVoter)
	waitSinks(t, f.bus, "session:7", 1)

	cancel()
	require.NoError(t, <-done)
	_, code, _ := conn.closeState()
	require.Equal(t, entities.CloseGoingAway, code)
	require.Zero(t, f.bus.NumSinks("session:7"))
}

func TestSendFailureStillUnsubscribes(t *testing.T) {
	f := newFixture()
	conn := newFakeConn()
	conn.sendErr = errors.New("broken pipe")
	done := f.serve(context.Background(), conn, entities.AccessCode("voter-code"), entities.AudienceVoter)
	waitSinks(t, f.bus, "session:7", 1)

	require.NoError(t, f.bus.Publish(context.Background(), "session:7", notify(livev1.TableVoter, "session:7", 0)))
	require.Error(t, <-done)
	require.Zero(t, f.bus.NumSinks("session:7"))
	_, code, _ := conn.closeState()
	require.Equal(t, entities.CloseInternalError, code)
}

func TestManyConnectionsShareGroup(t *testing.T) {
	f := newFixture()
	const clients = 8
	conns := make([]*fakeConn, clients)
	dones := make([]<-chan error, clients)
	for i := range conns {
		conns[i] = newFakeConn()
		dones[i] = f.serve(context.Background(), conns[i], entities.AccessCode("voter-code"), entities.AudienceVoter)
	}
	waitSinks(t, f.bus, "session:7", clients)
	require.Len(t, f.gateway.Connections(), clients)

	require.NoError(t, f.bus.Publish(context.Background(), "session:7", notify(livev1.TableSession, "session:7", 0)))
	for _, conn := range conns {
		select {
		case msg := <-conn.sent:
			require.Equal(t, "session", msg.Table)
		case <-time.After(time.Second):
			t.Fatal("expected every connection to receive the update")
		}
	}

	for i, conn := range conns {
		conn.hangUp()
		require.NoError(t, <-dones[i])
	}
	require.Zero(t, f.bus.NumGroups())
}
