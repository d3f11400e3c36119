package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "wahlfang/contexts/election-management/election-service/application"
	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"
	livev1 "wahlfang/contracts/gen/live/v1"
)

type AddApplicationCommand struct {
	ManagerID   int64
	ElectionID  int64
	DisplayName string
	Email       string
	Text        string
}

type UpdateApplicationCommand struct {
	ManagerID     int64
	ApplicationID int64
	DisplayName   *string
	Email         *string
	Text          *string
}

type ApplyCommand struct {
	VoterID     int64
	ElectionID  int64
	DisplayName string
	Email       string
	Text        string
}

// ApplicationUseCase edits candidate entries. Vote counters are only ever
// touched by BallotUseCase.
type ApplicationUseCase struct {
	Repo   ports.Repository
	Hook   ports.CommitHook
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc ApplicationUseCase) AddApplication(ctx context.Context, cmd AddApplicationCommand) (entities.Application, error) {
	if strings.TrimSpace(cmd.DisplayName) == "" {
		return entities.Application{}, domainerrors.ErrInvalidInput
	}
	election, session, err := loadManagedElection(ctx, uc.Repo, cmd.ManagerID, cmd.ElectionID)
	if err != nil {
		return entities.Application{}, err
	}
	if election.Status != entities.ElectionStatusPending {
		return entities.Application{}, domainerrors.ErrInvalidTransition
	}
	return uc.create(ctx, session, entities.Application{
		ElectionID:  election.ElectionID,
		DisplayName: strings.TrimSpace(cmd.DisplayName),
		Email:       strings.TrimSpace(cmd.Email),
		Text:        strings.TrimSpace(cmd.Text),
	})
}

// ApplyAsVoter lets a voter run in an election of their own session while
// the election still accepts applications. Each voter applies at most once.
func (uc ApplicationUseCase) ApplyAsVoter(ctx context.Context, cmd ApplyCommand) (entities.Application, error) {
	if strings.TrimSpace(cmd.DisplayName) == "" {
		return entities.Application{}, domainerrors.ErrInvalidInput
	}
	voter, err := uc.Repo.GetVoter(ctx, cmd.VoterID)
	if err != nil {
		return entities.Application{}, err
	}
	if voter.Revoked {
		return entities.Application{}, domainerrors.ErrVoterRevoked
	}
	election, err := uc.Repo.GetElection(ctx, cmd.ElectionID)
	if err != nil {
		return entities.Application{}, err
	}
	if election.SessionID != voter.SessionID {
		return entities.Application{}, domainerrors.ErrElectionNotFound
	}
	if !election.CanApply || election.Status != entities.ElectionStatusPending {
		return entities.Application{}, domainerrors.ErrApplicationsClosed
	}
	if _, found, err := uc.Repo.GetApplicationByVoter(ctx, election.ElectionID, voter.VoterID); err != nil {
		return entities.Application{}, err
	} else if found {
		return entities.Application{}, domainerrors.ErrApplicationExists
	}
	session, err := uc.Repo.GetSession(ctx, election.SessionID)
	if err != nil {
		return entities.Application{}, err
	}

	voterID := voter.VoterID
	return uc.create(ctx, session, entities.Application{
		ElectionID:  election.ElectionID,
		VoterID:     &voterID,
		DisplayName: strings.TrimSpace(cmd.DisplayName),
		Email:       strings.TrimSpace(cmd.Email),
		Text:        strings.TrimSpace(cmd.Text),
	})
}

func (uc ApplicationUseCase) UpdateApplication(ctx context.Context, cmd UpdateApplicationCommand) (entities.Application, error) {
	app, _, session, err := uc.loadManagedApplication(ctx, cmd.ManagerID, cmd.ApplicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if cmd.DisplayName != nil {
		name := strings.TrimSpace(*cmd.DisplayName)
		if name == "" {
			return entities.Application{}, domainerrors.ErrInvalidInput
		}
		app.DisplayName = name
	}
	if cmd.Email != nil {
		app.Email = strings.TrimSpace(*cmd.Email)
	}
	if cmd.Text != nil {
		app.Text = strings.TrimSpace(*cmd.Text)
	}

	now := nowFrom(uc.Clock)
	app.UpdatedAt = now
	if err := uc.Repo.UpdateApplication(ctx, app); err != nil {
		return entities.Application{}, err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntityApplication, app.ApplicationID, livev1.ChangeUpdated, session, app.ElectionID, now))
	return app, nil
}

func (uc ApplicationUseCase) DeleteApplication(ctx context.Context, managerID int64, applicationID int64) error {
	app, _, session, err := uc.loadManagedApplication(ctx, managerID, applicationID)
	if err != nil {
		return err
	}
	if err := uc.Repo.DeleteApplication(ctx, app.ApplicationID); err != nil {
		return err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntityApplication, app.ApplicationID, livev1.ChangeDeleted, session, app.ElectionID, nowFrom(uc.Clock)))
	return nil
}

func (uc ApplicationUseCase) create(ctx context.Context, session entities.Session, app entities.Application) (entities.Application, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := nowFrom(uc.Clock)
	app.CreatedAt = now
	app.UpdatedAt = now
	created, err := uc.Repo.CreateApplication(ctx, app)
	if err != nil {
		logger.Error("application create failed",
			"event", "election_application_create_failed",
			"module", moduleName,
			"layer", "application",
			"election_id", app.ElectionID,
			"error", err.Error(),
		)
		return entities.Application{}, err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntityApplication, created.ApplicationID, livev1.ChangeCreated, session, created.ElectionID, now))

	logger.Info("application created",
		"event", "election_application_created",
		"module", moduleName,
		"layer", "application",
		"election_id", created.ElectionID,
		"application_id", created.ApplicationID,
	)
	return created, nil
}

func (uc ApplicationUseCase) loadManagedApplication(
	ctx context.Context,
	managerID int64,
	applicationID int64,
) (entities.Application, entities.Election, entities.Session, error) {
	app, err := uc.Repo.GetApplication(ctx, applicationID)
	if err != nil {
		return entities.Application{}, entities.Election{}, entities.Session{}, err
	}
	election, session, err := loadManagedElection(ctx, uc.Repo, managerID, app.ElectionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrElectionNotFound) {
			return entities.Application{}, entities.Election{}, entities.Session{}, domainerrors.ErrApplicationNotFound
		}
		return entities.Application{}, entities.Election{}, entities.Session{}, err
	}
	return app, election, session, nil
}
