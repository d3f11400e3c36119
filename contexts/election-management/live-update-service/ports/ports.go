package ports

import (
	"context"
	"time"

	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	livev1 "wahlfang/contracts/gen/live/v1"
)

type VoterRecord struct {
	VoterID   int64
	SessionID int64
	Revoked   bool
}

type ManagerRecord struct {
	ManagerID int64
}

type SessionRecord struct {
	SessionID int64
}

// CredentialStore verifies credentials against persisted voters, managers
// and sessions. A miss is reported as found=false, never as an error; the
// error return is reserved for store failures.
type CredentialStore interface {
	VerifyVoterToken(ctx context.Context, accessCode string) (VoterRecord, bool, error)
	VerifyManagerPassword(ctx context.Context, identifier string, password string) (ManagerRecord, bool, error)
	VerifySpectatorToken(ctx context.Context, token string) (SessionRecord, bool, error)
	LookupVoter(ctx context.Context, voterID int64) (VoterRecord, bool, error)
	LookupManager(ctx context.Context, managerID int64) (ManagerRecord, bool, error)
	LookupSession(ctx context.Context, sessionID int64) (SessionRecord, bool, error)
}

// Bus is the group fan-out. Subscribe is idempotent per sink, Unsubscribe
// of an unknown sink is a no-op and Publish never blocks on slow sinks.
type Bus interface {
	Subscribe(ctx context.Context, group string, sink chan<- livev1.Notification) error
	Unsubscribe(ctx context.Context, group string, sink chan<- livev1.Notification) error
	Publish(ctx context.Context, group string, msg livev1.Notification) error
}

type TokenSigner interface {
	Sign(claims entities.TokenClaims) (string, error)
	Verify(token string) (entities.TokenClaims, error)
}

// Conn is one client connection after the transport handshake.
type Conn interface {
	// Receive blocks until the next inbound frame and discards it. It
	// returns an error once the peer is gone or the connection is closed.
	Receive() error
	Send(ctx context.Context, msg entities.OutboundMessage) error
	Close(code int, reason string) error
}

type Clock interface {
	Now() time.Time
}

// IDGenerator issues connection and token ids.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
