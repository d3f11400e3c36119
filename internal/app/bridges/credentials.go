// Package bridges adapts one module's application API to another module's
// ports. Modules never import each other; the composition root wires them
// through these adapters.
package bridges

import (
	"context"
	"errors"

	"wahlfang/contexts/election-management/election-service/application/queries"
	electionerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	liveports "wahlfang/contexts/election-management/live-update-service/ports"
)

// CredentialStore exposes the election service's credential queries as the
// live-update credential store. Misses become found=false.
type CredentialStore struct {
	Credentials queries.CredentialQueries
}

func (b CredentialStore) VerifyVoterToken(ctx context.Context, accessCode string) (liveports.VoterRecord, bool, error) {
	voter, err := b.Credentials.VerifyVoterToken(ctx, accessCode)
	if err != nil {
		return liveports.VoterRecord{}, false, missOrError(err, electionerrors.ErrInvalidCredential)
	}
	return liveports.VoterRecord{VoterID: voter.VoterID, SessionID: voter.SessionID, Revoked: voter.Revoked}, true, nil
}

func (b CredentialStore) VerifyManagerPassword(ctx context.Context, identifier string, password string) (liveports.ManagerRecord, bool, error) {
	manager, err := b.Credentials.VerifyManagerPassword(ctx, identifier, password)
	if err != nil {
		return liveports.ManagerRecord{}, false, missOrError(err, electionerrors.ErrInvalidCredential)
	}
	return liveports.ManagerRecord{ManagerID: manager.ManagerID}, true, nil
}

func (b CredentialStore) VerifySpectatorToken(ctx context.Context, token string) (liveports.SessionRecord, bool, error) {
	session, err := b.Credentials.VerifySpectatorToken(ctx, token)
	if err != nil {
		return liveports.SessionRecord{}, false, missOrError(err, electionerrors.ErrInvalidCredential)
	}
	return liveports.SessionRecord{SessionID: session.SessionID}, true, nil
}

func (b CredentialStore) LookupVoter(ctx context.Context, voterID int64) (liveports.VoterRecord, bool, error) {
	voter, err := b.Credentials.LookupVoter(ctx, voterID)
	if err != nil {
		return liveports.VoterRecord{}, false, missOrError(err, electionerrors.ErrVoterNotFound)
	}
	return liveports.VoterRecord{VoterID: voter.VoterID, SessionID: voter.SessionID, Revoked: voter.Revoked}, true, nil
}

func (b CredentialStore) LookupManager(ctx context.Context, managerID int64) (liveports.ManagerRecord, bool, error) {
	manager, err := b.Credentials.LookupManager(ctx, managerID)
	if err != nil {
		return liveports.ManagerRecord{}, false, missOrError(err, electionerrors.ErrManagerNotFound)
	}
	return liveports.ManagerRecord{ManagerID: manager.ManagerID}, true, nil
}

func (b CredentialStore) LookupSession(ctx context.Context, sessionID int64) (liveports.SessionRecord, bool, error) {
	session, err := b.Credentials.LookupSession(ctx, sessionID)
	if err != nil {
		return liveports.SessionRecord{}, false, missOrError(err, electionerrors.ErrSessionNotFound)
	}
	return liveports.SessionRecord{SessionID: session.SessionID}, true, nil
}

// missOrError returns nil for the sentinel that means "no such credential".
func missOrError(err error, miss error) error {
	if errors.Is(err, miss) {
		return nil
	}
	return err
}

var _ liveports.CredentialStore = CredentialStore{}
