package commands

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	application "wahlfang/contexts/election-management/election-service/application"
	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"
)

type CreateManagerCommand struct {
	Username         string
	Email            string
	Password         string
	GeneratePassword bool
}

type CreateManagerResult struct {
	Manager entities.Manager
	// Password is only set when it was generated.
	Password string
}

// ManagerUseCase is the administrative bootstrap of manager accounts.
type ManagerUseCase struct {
	Repo                ports.ManagerRepository
	Hasher              ports.PasswordHasher
	Tokens              ports.TokenGenerator
	Clock               ports.Clock
	AllowedEmailDomains []string
	Logger              *slog.Logger
}

func (uc ManagerUseCase) CreateManager(ctx context.Context, cmd CreateManagerCommand) (CreateManagerResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	username := strings.TrimSpace(cmd.Username)
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if username == "" || email == "" {
		return CreateManagerResult{}, domainerrors.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return CreateManagerResult{}, domainerrors.ErrInvalidInput
	}
	if !uc.emailDomainAllowed(email) {
		return CreateManagerResult{}, domainerrors.ErrEmailDomainNotAllowed
	}

	password := cmd.Password
	generated := ""
	if cmd.GeneratePassword {
		value, err := uc.Tokens.NewPassword()
		if err != nil {
			return CreateManagerResult{}, err
		}
		password = value
		generated = value
	}
	if len(password) < 8 {
		return CreateManagerResult{}, domainerrors.ErrInvalidInput
	}
	hash, err := uc.Hasher.Hash(password)
	if err != nil {
		return CreateManagerResult{}, err
	}

	manager, err := uc.Repo.CreateManager(ctx, entities.Manager{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    nowFrom(uc.Clock),
	})
	if err != nil {
		logger.Warn("manager create failed",
			"event", "election_manager_create_failed",
			"module", moduleName,
			"layer", "application",
			"username", username,
			"error", err.Error(),
		)
		return CreateManagerResult{}, err
	}

	logger.Info("manager created",
		"event", "election_manager_created",
		"module", moduleName,
		"layer", "application",
		"manager_id", manager.ManagerID,
	)
	return CreateManagerResult{Manager: manager, Password: generated}, nil
}

func (uc ManagerUseCase) emailDomainAllowed(email string) bool {
	if len(uc.AllowedEmailDomains) == 0 {
		return true
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := email[at+1:]
	for _, allowed := range uc.AllowedEmailDomains {
		if strings.EqualFold(strings.TrimSpace(allowed), domain) {
			return true
		}
	}
	return false
}
