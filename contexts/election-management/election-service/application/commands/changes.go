package commands

import (
	"context"
	"errors"
	"slices"
	"time"

	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"
	livev1 "wahlfang/contracts/gen/live/v1"
)

const moduleName = "election-management/election-service"

// emitChange hands a committed write to the commit hook. It runs after the
// repository call returned, so nothing the hook does can undo the write.
func emitChange(ctx context.Context, hook ports.CommitHook, event livev1.ChangeEvent) {
	if hook == nil {
		return
	}
	hook.AfterCommit(ctx, event)
}

func changeEvent(
	entity livev1.EntityType,
	entityID int64,
	change livev1.ChangeKind,
	session entities.Session,
	electionID int64,
	now time.Time,
) livev1.ChangeEvent {
	return livev1.ChangeEvent{
		Entity:     entity,
		EntityID:   entityID,
		Change:     change,
		SessionID:  session.SessionID,
		ElectionID: electionID,
		ManagerIDs: slices.Clone(session.ManagerIDs),
		OccurredAt: now,
	}
}

func nowFrom(clock ports.Clock) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock.Now().UTC()
}

// loadManagedSession hides sessions the manager does not administer behind
// ErrSessionNotFound.
func loadManagedSession(
	ctx context.Context,
	repo ports.SessionRepository,
	managerID int64,
	sessionID int64,
) (entities.Session, error) {
	session, err := repo.GetSession(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if !session.ManagedBy(managerID) {
		return entities.Session{}, domainerrors.ErrSessionNotFound
	}
	return session, nil
}

func loadManagedElection(
	ctx context.Context,
	repo ports.Repository,
	managerID int64,
	electionID int64,
) (entities.Election, entities.Session, error) {
	election, err := repo.GetElection(ctx, electionID)
	if err != nil {
		return entities.Election{}, entities.Session{}, err
	}
	session, err := loadManagedSession(ctx, repo, managerID, election.SessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return entities.Election{}, entities.Session{}, domainerrors.ErrElectionNotFound
		}
		return entities.Election{}, entities.Session{}, err
	}
	return election, session, nil
}
