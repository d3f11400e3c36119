package commands

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	application "wahlfang/contexts/election-management/election-service/application"
	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"
	livev1 "wahlfang/contracts/gen/live/v1"
)

type CreateSessionCommand struct {
	ManagerID   int64
	Title       string
	MeetingLink string
}

type UpdateSessionCommand struct {
	ManagerID   int64
	SessionID   int64
	Title       *string
	MeetingLink *string
}

type AddSessionManagerCommand struct {
	ManagerID      int64
	SessionID      int64
	CoManagerLogin string
}

// SessionUseCase owns the session lifecycle. Deleting a session removes its
// elections, applications and voters with it.
type SessionUseCase struct {
	Repo   ports.Repository
	Tokens ports.TokenGenerator
	Hook   ports.CommitHook
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc SessionUseCase) CreateSession(ctx context.Context, cmd CreateSessionCommand) (entities.Session, error) {
	logger := application.ResolveLogger(uc.Logger)
	title := strings.TrimSpace(cmd.Title)
	if cmd.ManagerID <= 0 || title == "" {
		return entities.Session{}, domainerrors.ErrInvalidInput
	}
	if _, err := uc.Repo.GetManager(ctx, cmd.ManagerID); err != nil {
		return entities.Session{}, err
	}
	token, err := uc.Tokens.NewSpectatorToken()
	if err != nil {
		return entities.Session{}, err
	}

	now := nowFrom(uc.Clock)
	session, err := uc.Repo.CreateSession(ctx, entities.Session{
		Title:          title,
		MeetingLink:    strings.TrimSpace(cmd.MeetingLink),
		SpectatorToken: token,
		ManagerIDs:     []int64{cmd.ManagerID},
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		logger.Error("session create failed",
			"event", "election_session_create_failed",
			"module", moduleName,
			"layer", "application",
			"manager_id", cmd.ManagerID,
			"error", err.Error(),
		)
		return entities.Session{}, err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntitySession, session.SessionID, livev1.ChangeCreated, session, 0, now))

	logger.Info("session created",
		"event", "election_session_created",
		"module", moduleName,
		"layer", "application",
		"session_id", session.SessionID,
		"manager_id", cmd.ManagerID,
	)
	return session, nil
}

func (uc SessionUseCase) UpdateSession(ctx context.Context, cmd UpdateSessionCommand) (entities.Session, error) {
	session, err := loadManagedSession(ctx, uc.Repo, cmd.ManagerID, cmd.SessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if title == "" {
			return entities.Session{}, domainerrors.ErrInvalidInput
		}
		session.Title = title
	}
	if cmd.MeetingLink != nil {
		session.MeetingLink = strings.TrimSpace(*cmd.MeetingLink)
	}

	now := nowFrom(uc.Clock)
	session.UpdatedAt = now
	if err := uc.Repo.UpdateSession(ctx, session); err != nil {
		return entities.Session{}, err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntitySession, session.SessionID, livev1.ChangeUpdated, session, 0, now))
	return session, nil
}

// AddSessionManager grants a second manager access to a session.
func (uc SessionUseCase) AddSessionManager(ctx context.Context, cmd AddSessionManagerCommand) (entities.Session, error) {
	session, err := loadManagedSession(ctx, uc.Repo, cmd.ManagerID, cmd.SessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if strings.TrimSpace(cmd.CoManagerLogin) == "" {
		return entities.Session{}, domainerrors.ErrInvalidInput
	}
	coManager, err := uc.Repo.GetManagerByLogin(ctx, strings.TrimSpace(cmd.CoManagerLogin))
	if err != nil {
		return entities.Session{}, err
	}
	if slices.Contains(session.ManagerIDs, coManager.ManagerID) {
		return session, nil
	}

	now := nowFrom(uc.Clock)
	session.ManagerIDs = append(session.ManagerIDs, coManager.ManagerID)
	session.UpdatedAt = now
	if err := uc.Repo.UpdateSession(ctx, session); err != nil {
		return entities.Session{}, err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntitySession, session.SessionID, livev1.ChangeUpdated, session, 0, now))
	return session, nil
}

// DeleteSession emits a single session notification; cascaded children are
// not announced one by one.
func (uc SessionUseCase) DeleteSession(ctx context.Context, managerID int64, sessionID int64) error {
	logger := application.ResolveLogger(uc.Logger)
	session, err := loadManagedSession(ctx, uc.Repo, managerID, sessionID)
	if err != nil {
		return err
	}
	if err := uc.Repo.DeleteSession(ctx, session.SessionID); err != nil {
		logger.Error("session delete failed",
			"event", "election_session_delete_failed",
			"module", moduleName,
			"layer", "application",
			"session_id", session.SessionID,
			"error", err.Error(),
		)
		return err
	}
	emitChange(ctx, uc.Hook, changeEvent(livev1.EntitySession, session.SessionID, livev1.ChangeDeleted, session, 0, nowFrom(uc.Clock)))

	logger.Info("session deleted",
		"event", "election_session_deleted",
		"module", moduleName,
		"layer", "application",
		"session_id", session.SessionID,
		"manager_id", managerID,
	)
	return nil
}
