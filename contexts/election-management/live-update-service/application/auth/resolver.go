package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"wahlfang/contexts/election-management/live-update-service/application"
	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/live-update-service/domain/errors"
	"wahlfang/contexts/election-management/live-update-service/ports"
)

const moduleName = "election-management/live-update-service"

// Resolver turns a presented credential into a principal. Failures are
// reported as ErrInvalidCredential or ErrRevoked only; store failures are
// returned wrapped as they are. Resolving never touches vote state.
type Resolver struct {
	Store  ports.CredentialStore
	Tokens ports.TokenSigner
	Logger *slog.Logger
}

func (r Resolver) Resolve(ctx context.Context, credential entities.Credential) (entities.Principal, error) {
	logger := application.ResolveLogger(r.Logger)

	principal, err := r.resolve(ctx, credential)
	if err != nil {
		level := slog.LevelDebug
		if !errors.Is(err, domainerrors.ErrInvalidCredential) && !errors.Is(err, domainerrors.ErrRevoked) {
			level = slog.LevelError
		}
		logger.Log(ctx, level, "credential rejected",
			"event", "live_credential_rejected",
			"module", moduleName,
			"layer", "application",
			"credential_kind", string(credential.Kind),
			"error", err.Error(),
		)
		return entities.Principal{}, err
	}
	return principal, nil
}

func (r Resolver) resolve(ctx context.Context, credential entities.Credential) (entities.Principal, error) {
	secret := strings.TrimSpace(credential.Secret)
	if secret == "" {
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	}

	switch credential.Kind {
	case entities.CredentialAccessCode:
		voter, found, err := r.Store.VerifyVoterToken(ctx, secret)
		if err != nil {
			return entities.Principal{}, err
		}
		return voterPrincipal(voter, found)

	case entities.CredentialPassword:
		identifier := strings.TrimSpace(credential.Identifier)
		if identifier == "" {
			return entities.Principal{}, domainerrors.ErrInvalidCredential
		}
		// passwords are compared untrimmed
		manager, found, err := r.Store.VerifyManagerPassword(ctx, identifier, credential.Secret)
		if err != nil {
			return entities.Principal{}, err
		}
		if !found {
			return entities.Principal{}, domainerrors.ErrInvalidCredential
		}
		return entities.ManagerPrincipal(manager.ManagerID), nil

	case entities.CredentialSpectatorToken:
		session, found, err := r.Store.VerifySpectatorToken(ctx, secret)
		if err != nil {
			return entities.Principal{}, err
		}
		if !found {
			return entities.Principal{}, domainerrors.ErrInvalidCredential
		}
		return entities.SpectatorPrincipal(session.SessionID), nil

	case entities.CredentialBearer:
		return r.resolveBearer(ctx, secret)

	default:
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	}
}

// resolveBearer checks a previously issued token. The subject is looked up
// again so a revoked voter or a deleted session can no longer connect.
func (r Resolver) resolveBearer(ctx context.Context, token string) (entities.Principal, error) {
	if r.Tokens == nil {
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	}
	claims, err := r.Tokens.Verify(token)
	if err != nil {
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	}
	claimed := claims.Principal
	if !claimed.Valid() {
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	}

	switch claimed.Kind {
	case entities.PrincipalVoter:
		voter, found, err := r.Store.LookupVoter(ctx, claimed.VoterID)
		if err != nil {
			return entities.Principal{}, err
		}
		if found && voter.SessionID != claimed.SessionID {
			return entities.Principal{}, domainerrors.ErrInvalidCredential
		}
		return voterPrincipal(voter, found)
	case entities.PrincipalManager:
		manager, found, err := r.Store.LookupManager(ctx, claimed.ManagerID)
		if err != nil {
			return entities.Principal{}, err
		}
		if !found {
			return entities.Principal{}, domainerrors.ErrInvalidCredential
		}
		return entities.ManagerPrincipal(manager.ManagerID), nil
	case entities.PrincipalSpectator:
		session, found, err := r.Store.LookupSession(ctx, claimed.SessionID)
		if err != nil {
			return entities.Principal{}, err
		}
		if !found {
			return entities.Principal{}, domainerrors.ErrInvalidCredential
		}
		return entities.SpectatorPrincipal(session.SessionID), nil
	default:
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	}
}

func voterPrincipal(voter ports.VoterRecord, found bool) (entities.Principal, error) {
	if !found {
		return entities.Principal{}, domainerrors.ErrInvalidCredential
	}
	if voter.Revoked {
		return entities.Principal{}, domainerrors.ErrRevoked
	}
	return entities.VoterPrincipal(voter.VoterID, voter.SessionID), nil
}
