package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	application "wahlfang/contexts/election-management/election-service/application"
	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"
	livev1 "wahlfang/contracts/gen/live/v1"
)

type AddVoterCommand struct {
	ManagerID int64
	SessionID int64
	Name      string
	Email     string
}

type VoterUseCase struct {
	Repo   ports.Repository
	Tokens ports.TokenGenerator
	Hook   ports.CommitHook
	Clock  ports.Clock
	Logger *slog.Logger
}

// AddVoter registers a voter and returns the raw access code. The code is
// never stored and cannot be recovered later.
func (uc VoterUseCase) AddVoter(ctx context.Context, cmd AddVoterCommand) (entities.IssuedVoter, error) {
	logger := application.ResolveLogger(uc.Logger)
	email := strings.TrimSpace(cmd.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return entities.IssuedVoter{}, domainerrors.ErrInvalidInput
		}
	}
	session, err := loadManagedSession(ctx, uc.Repo, cmd.ManagerID, cmd.SessionID)
	if err != nil {
		return entities.IssuedVoter{}, err
	}
	code, err := uc.Tokens.NewAccessCode()
	if err != nil {
		return entities.IssuedVoter{}, err
	}

	now := nowFrom(uc.Clock)
	voter, err := uc.Repo.CreateVoter(ctx, entities.Voter{
		SessionID: session.SessionID,
		Name:      strings.TrimSpace(cmd.Name),
		Email:     email,
		TokenHash: uc.Tokens.HashAccessCode(code),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.Error("voter create failed",
			"event", "election_voter_create_failed",
			"module", moduleName,
			"layer", "application",
			"session_id", session.SessionID,
			"error", err.Error(),
		)
		return entities.IssuedVoter{}, err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntityVoter, voter.VoterID, livev1.ChangeCreated, session, 0, now))

	logger.Info("voter created",
		"event", "election_voter_created",
		"module", moduleName,
		"layer", "application",
		"session_id", session.SessionID,
		"voter_id", voter.VoterID,
	)
	return entities.IssuedVoter{Voter: voter, AccessCode: code}, nil
}

// InvalidateVoter revokes the voter's access code. Revocation is permanent.
func (uc VoterUseCase) InvalidateVoter(ctx context.Context, managerID int64, voterID int64) (entities.Voter, error) {
	voter, session, err := uc.loadManagedVoter(ctx, managerID, voterID)
	if err != nil {
		return entities.Voter{}, err
	}
	if voter.Revoked {
		return voter, nil
	}

	now := nowFrom(uc.Clock)
	voter.Revoked = true
	voter.UpdatedAt = now
	if err := uc.Repo.UpdateVoter(ctx, voter); err != nil {
		return entities.Voter{}, err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntityVoter, voter.VoterID, livev1.ChangeUpdated, session, 0, now))

	application.ResolveLogger(uc.Logger).Info("voter invalidated",
		"event", "election_voter_invalidated",
		"module", moduleName,
		"layer", "application",
		"session_id", session.SessionID,
		"voter_id", voter.VoterID,
	)
	return voter, nil
}

func (uc VoterUseCase) DeleteVoter(ctx context.Context, managerID int64, voterID int64) error {
	voter, session, err := uc.loadManagedVoter(ctx, managerID, voterID)
	if err != nil {
		return err
	}
	if err := uc.Repo.DeleteVoter(ctx, voter.VoterID); err != nil {
		return err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntityVoter, voter.VoterID, livev1.ChangeDeleted, session, 0, nowFrom(uc.Clock)))
	return nil
}

func (uc VoterUseCase) loadManagedVoter(ctx context.Context, managerID int64, voterID int64) (entities.Voter, entities.Session, error) {
	voter, err := uc.Repo.GetVoter(ctx, voterID)
	if err != nil {
		return entities.Voter{}, entities.Session{}, err
	}
	session, err := loadManagedSession(ctx, uc.Repo, managerID, voter.SessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return entities.Voter{}, entities.Session{}, domainerrors.ErrVoterNotFound
		}
		return entities.Voter{}, entities.Session{}, err
	}
	return voter, session, nil
}
