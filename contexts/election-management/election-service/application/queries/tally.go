package queries

import (
	"context"
	"log/slog"

	application "wahlfang/contexts/election-management/election-service/application"
	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/domain/services"
	"wahlfang/contexts/election-management/election-service/ports"
)

// TallyUseCase serves publication-gated result summaries. It never writes.
type TallyUseCase struct {
	Repo   ports.Repository
	Policy services.WinnerPolicy
	Logger *slog.Logger
}

// Summarize returns the tally of an election in insertion order.
//
// Owning managers always see it. Voters and spectators of the session see
// the identical tally once results are published; before that they get
// ErrResultsNotPublished. Everyone else is told the election does not exist.
func (uc TallyUseCase) Summarize(ctx context.Context, actor entities.Actor, electionID int64) ([]entities.ApplicationSummary, error) {
	logger := application.ResolveLogger(uc.Logger)
	election, err := uc.Repo.GetElection(ctx, electionID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(ctx, actor, election); err != nil {
		logger.Warn("tally access denied",
			"event", "election_tally_access_denied",
			"module", "election-management/election-service",
			"layer", "application",
			"election_id", electionID,
			"actor_kind", string(actor.Kind),
			"error", err.Error(),
		)
		return nil, err
	}

	apps, err := uc.Repo.ListApplicationsByElection(ctx, election.ElectionID)
	if err != nil {
		return nil, err
	}
	policy := uc.Policy
	if policy == "" {
		policy = services.WinnerPolicyInsertionOrder
	}
	return services.Summarize(apps, election.MaxWinners, policy), nil
}

func (uc TallyUseCase) authorize(ctx context.Context, actor entities.Actor, election entities.Election) error {
	switch actor.Kind {
	case entities.ActorManager:
		session, err := uc.Repo.GetSession(ctx, election.SessionID)
		if err != nil {
			return err
		}
		if !session.ManagedBy(actor.ID) {
			return domainerrors.ErrElectionNotFound
		}
		return nil
	case entities.ActorVoter, entities.ActorSpectator:
		if actor.SessionID != election.SessionID {
			return domainerrors.ErrElectionNotFound
		}
		if !election.IsPublished() {
			return domainerrors.ErrResultsNotPublished
		}
		return nil
	default:
		return domainerrors.ErrElectionNotFound
	}
}
