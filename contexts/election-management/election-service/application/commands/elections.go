package commands

import (
	"context"
	"log/slog"
	"strings"

	application "wahlfang/contexts/election-management/election-service/application"
	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"
	livev1 "wahlfang/contracts/gen/live/v1"
)

type CreateElectionCommand struct {
	ManagerID         int64
	SessionID         int64
	Title             string
	MaxWinners        *int
	CanApply          bool
	DisableAbstention bool
}

// UpdateElectionCommand patches the fields that are set. ClearMaxWinners
// removes the cutoff.
type UpdateElectionCommand struct {
	ManagerID         int64
	ElectionID        int64
	Title             *string
	MaxWinners        *int
	ClearMaxWinners   bool
	CanApply          *bool
	DisableAbstention *bool
}

type SetPublicationCommand struct {
	ManagerID   int64
	ElectionID  int64
	Publication entities.ResultPublication
}

type ElectionUseCase struct {
	Repo   ports.Repository
	Hook   ports.CommitHook
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc ElectionUseCase) CreateElection(ctx context.Context, cmd CreateElectionCommand) (entities.Election, error) {
	logger := application.ResolveLogger(uc.Logger)
	title := strings.TrimSpace(cmd.Title)
	if title == "" || (cmd.MaxWinners != nil && *cmd.MaxWinners < 0) {
		return entities.Election{}, domainerrors.ErrInvalidInput
	}
	session, err := loadManagedSession(ctx, uc.Repo, cmd.ManagerID, cmd.SessionID)
	if err != nil {
		return entities.Election{}, err
	}

	now := nowFrom(uc.Clock)
	election, err := uc.Repo.CreateElection(ctx, entities.Election{
		SessionID:         session.SessionID,
		Title:             title,
		Status:            entities.ElectionStatusPending,
		CanApply:          cmd.CanApply,
		MaxWinners:        cmd.MaxWinners,
		DisableAbstention: cmd.DisableAbstention,
		Publication:       entities.PublicationUnpublished,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		logger.Error("election create failed",
			"event", "election_election_create_failed",
			"module", moduleName,
			"layer", "application",
			"session_id", session.SessionID,
			"error", err.Error(),
		)
		return entities.Election{}, err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntityElection, election.ElectionID, livev1.ChangeCreated, session, election.ElectionID, now))

	logger.Info("election created",
		"event", "election_election_created",
		"module", moduleName,
		"layer", "application",
		"session_id", session.SessionID,
		"election_id", election.ElectionID,
	)
	return election, nil
}

func (uc ElectionUseCase) UpdateElection(ctx context.Context, cmd UpdateElectionCommand) (entities.Election, error) {
	election, session, err := loadManagedElection(ctx, uc.Repo, cmd.ManagerID, cmd.ElectionID)
	if err != nil {
		return entities.Election{}, err
	}
	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if title == "" {
			return entities.Election{}, domainerrors.ErrInvalidInput
		}
		election.Title = title
	}
	if cmd.ClearMaxWinners {
		election.MaxWinners = nil
	} else if cmd.MaxWinners != nil {
		if *cmd.MaxWinners < 0 {
			return entities.Election{}, domainerrors.ErrInvalidInput
		}
		value := *cmd.MaxWinners
		election.MaxWinners = &value
	}
	if cmd.CanApply != nil {
		election.CanApply = *cmd.CanApply
	}
	if cmd.DisableAbstention != nil {
		if election.Status != entities.ElectionStatusPending {
			return entities.Election{}, domainerrors.ErrInvalidTransition
		}
		election.DisableAbstention = *cmd.DisableAbstention
	}
	return uc.save(ctx, election, session)
}

// OpenElection starts voting. A closed election may be reopened.
func (uc ElectionUseCase) OpenElection(ctx context.Context, managerID int64, electionID int64) (entities.Election, error) {
	election, session, err := loadManagedElection(ctx, uc.Repo, managerID, electionID)
	if err != nil {
		return entities.Election{}, err
	}
	if election.Status == entities.ElectionStatusOpen {
		return election, nil
	}
	election.Status = entities.ElectionStatusOpen
	return uc.save(ctx, election, session)
}

func (uc ElectionUseCase) CloseElection(ctx context.Context, managerID int64, electionID int64) (entities.Election, error) {
	election, session, err := loadManagedElection(ctx, uc.Repo, managerID, electionID)
	if err != nil {
		return entities.Election{}, err
	}
	switch election.Status {
	case entities.ElectionStatusClosed:
		return election, nil
	case entities.ElectionStatusPending:
		return entities.Election{}, domainerrors.ErrInvalidTransition
	}
	election.Status = entities.ElectionStatusClosed
	return uc.save(ctx, election, session)
}

// SetPublication moves the result publication state. Only a manager that
// owns the election's session gets past loadManagedElection.
func (uc ElectionUseCase) SetPublication(ctx context.Context, cmd SetPublicationCommand) (entities.Election, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !cmd.Publication.Valid() {
		return entities.Election{}, domainerrors.ErrInvalidInput
	}
	election, session, err := loadManagedElection(ctx, uc.Repo, cmd.ManagerID, cmd.ElectionID)
	if err != nil {
		return entities.Election{}, err
	}
	if election.Publication == cmd.Publication {
		return election, nil
	}
	previous := election.Publication
	election.Publication = cmd.Publication
	updated, err := uc.save(ctx, election, session)
	if err != nil {
		return entities.Election{}, err
	}

	logger.Info("election publication changed",
		"event", "election_publication_changed",
		"module", moduleName,
		"layer", "application",
		"election_id", election.ElectionID,
		"manager_id", cmd.ManagerID,
		"from", string(previous),
		"to", string(cmd.Publication),
	)
	return updated, nil
}

func (uc ElectionUseCase) DeleteElection(ctx context.Context, managerID int64, electionID int64) error {
	logger := application.ResolveLogger(uc.Logger)
	election, session, err := loadManagedElection(ctx, uc.Repo, managerID, electionID)
	if err != nil {
		return err
	}
	if err := uc.Repo.DeleteElection(ctx, election.ElectionID); err != nil {
		logger.Error("election delete failed",
			"event", "election_election_delete_failed",
			"module", moduleName,
			"layer", "application",
			"election_id", election.ElectionID,
			"error", err.Error(),
		)
		return err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntityElection, election.ElectionID, livev1.ChangeDeleted, session, election.ElectionID, nowFrom(uc.Clock)))

	logger.Info("election deleted",
		"event", "election_election_deleted",
		"module", moduleName,
		"layer", "application",
		"session_id", session.SessionID,
		"election_id", election.ElectionID,
	)
	return nil
}

func (uc ElectionUseCase) save(ctx context.Context, election entities.Election, session entities.Session) (entities.Election, error) {
	now := nowFrom(uc.Clock)
	election.UpdatedAt = now
	if err := uc.Repo.UpdateElection(ctx, election); err != nil {
		application.ResolveLogger(uc.Logger).Error("election update failed",
			"event", "election_election_update_failed",
			"module", moduleName,
			"layer", "application",
			"election_id", election.ElectionID,
			"error", err.Error(),
		)
		return entities.Election{}, err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntityElection, election.ElectionID, livev1.ChangeUpdated, session, election.ElectionID, now))
	return election, nil
}
