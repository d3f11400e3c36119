package commands

import (
	"context"
	"log/slog"

	application "wahlfang/contexts/election-management/election-service/application"
	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"
	livev1 "wahlfang/contracts/gen/live/v1"
)

type CastBallotCommand struct {
	VoterID    int64
	ElectionID int64
	Choices    []entities.BallotChoice
}

// BallotUseCase records votes. Counters only ever grow.
type BallotUseCase struct {
	Repo   ports.Repository
	Hook   ports.CommitHook
	Clock  ports.Clock
	Logger *slog.Logger
}

// CastBallot records one ballot per voter and election. Applications the
// ballot does not mention count as abstention unless the election disables
// abstention, in which case every application needs an explicit choice.
func (uc BallotUseCase) CastBallot(ctx context.Context, cmd CastBallotCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	voter, err := uc.Repo.GetVoter(ctx, cmd.VoterID)
	if err != nil {
		return err
	}
	if voter.Revoked {
		return domainerrors.ErrVoterRevoked
	}
	election, err := uc.Repo.GetElection(ctx, cmd.ElectionID)
	if err != nil {
		return err
	}
	if election.SessionID != voter.SessionID {
		return domainerrors.ErrElectionNotFound
	}
	if !election.IsOpen() {
		return domainerrors.ErrElectionNotOpen
	}
	if voter.HasVoted(election.ElectionID) {
		return domainerrors.ErrAlreadyVoted
	}

	apps, err := uc.Repo.ListApplicationsByElection(ctx, election.ElectionID)
	if err != nil {
		return err
	}
	choices, err := normalizeBallot(election, apps, cmd.Choices)
	if err != nil {
		logger.Warn("ballot rejected",
			"event", "election_ballot_rejected",
			"module", moduleName,
			"layer", "application",
			"election_id", election.ElectionID,
			"voter_id", voter.VoterID,
			"error", err.Error(),
		)
		return err
	}
	session, err := uc.Repo.GetSession(ctx, election.SessionID)
	if err != nil {
		return err
	}

	now := nowFrom(uc.Clock)
	if err := uc.Repo.RecordBallot(ctx, voter.VoterID, election.ElectionID, choices, now); err != nil {
		return err
	}
	for _, choice := range choices {
		emitChange(ctx, uc.Hook, changeEvent(livev1.EntityApplication, choice.ApplicationID, livev1.ChangeUpdated, session, election.ElectionID, now))
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntityVoter, voter.VoterID, livev1.ChangeUpdated, session, 0, now))

	logger.Info("ballot cast",
		"event", "election_ballot_cast",
		"module", moduleName,
		"layer", "application",
		"election_id", election.ElectionID,
		"voter_id", voter.VoterID,
		"choices", len(choices),
	)
	return nil
}

func normalizeBallot(
	election entities.Election,
	apps []entities.Application,
	raw []entities.BallotChoice,
) ([]entities.BallotChoice, error) {
	known := make(map[int64]struct{}, len(apps))
	for _, app := range apps {
		known[app.ApplicationID] = struct{}{}
	}
	picked := make(map[int64]entities.Choice, len(raw))
	for _, choice := range raw {
		if _, ok := known[choice.ApplicationID]; !ok || !choice.Choice.Valid() {
			return nil, domainerrors.ErrInvalidInput
		}
		if _, dup := picked[choice.ApplicationID]; dup {
			return nil, domainerrors.ErrInvalidInput
		}
		if choice.Choice == entities.ChoiceAbstention && election.DisableAbstention {
			return nil, domainerrors.ErrAbstentionDisabled
		}
		picked[choice.ApplicationID] = choice.Choice
	}

	choices := make([]entities.BallotChoice, 0, len(apps))
	for _, app := range apps {
		choice, ok := picked[app.ApplicationID]
		if !ok {
			if election.DisableAbstention {
				return nil, domainerrors.ErrAbstentionDisabled
			}
			choice = entities.ChoiceAbstention
		}
		choices = append(choices, entities.BallotChoice{ApplicationID: app.ApplicationID, Choice: choice})
	}
	return choices, nil
}
