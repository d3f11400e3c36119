package queries

import (
	"context"

	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"
)

type SessionDetail struct {
	Session   entities.Session
	Elections []entities.Election
	Voters    []entities.Voter
}

type SessionQueries struct {
	Repo ports.Repository
}

func (q SessionQueries) ListManagedSessions(ctx context.Context, managerID int64) ([]entities.Session, error) {
	return q.Repo.ListSessionsByManager(ctx, managerID)
}

func (q SessionQueries) GetManagedSession(ctx context.Context, managerID int64, sessionID int64) (SessionDetail, error) {
	session, err := q.Repo.GetSession(ctx, sessionID)
	if err != nil {
		return SessionDetail{}, err
	}
	if !session.ManagedBy(managerID) {
		return SessionDetail{}, domainerrors.ErrSessionNotFound
	}
	elections, err := q.Repo.ListElectionsBySession(ctx, sessionID)
	if err != nil {
		return SessionDetail{}, err
	}
	voters, err := q.Repo.ListVotersBySession(ctx, sessionID)
	if err != nil {
		return SessionDetail{}, err
	}
	return SessionDetail{Session: session, Elections: elections, Voters: voters}, nil
}

// ListElections returns the elections visible to the actor: every election
// of a managed session, or the elections of a voter's or spectator's session.
func (q SessionQueries) ListElections(ctx context.Context, actor entities.Actor, sessionID int64) ([]entities.Election, error) {
	switch actor.Kind {
	case entities.ActorManager:
		session, err := q.Repo.GetSession(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if !session.ManagedBy(actor.ID) {
			return nil, domainerrors.ErrSessionNotFound
		}
	case entities.ActorVoter, entities.ActorSpectator:
		if actor.SessionID != sessionID {
			return nil, domainerrors.ErrSessionNotFound
		}
	default:
		return nil, domainerrors.ErrSessionNotFound
	}
	return q.Repo.ListElectionsBySession(ctx, sessionID)
}
