package queries

import (
	"context"
	"errors"
	"strings"

	"wahlfang/contexts/election-management/election-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	"wahlfang/contexts/election-management/election-service/ports"
)

// CredentialQueries verifies the credentials issued by this service. Lookup
// misses are reported as ErrInvalidCredential so callers cannot tell which
// part of a credential was wrong.
type CredentialQueries struct {
	Repo   ports.Repository
	Hasher ports.PasswordHasher
	Tokens ports.TokenGenerator
}

// VerifyVoterToken returns the voter owning the access code, revoked or not.
func (q CredentialQueries) VerifyVoterToken(ctx context.Context, accessCode string) (entities.Voter, error) {
	code := strings.TrimSpace(accessCode)
	if code == "" {
		return entities.Voter{}, domainerrors.ErrInvalidCredential
	}
	voter, err := q.Repo.GetVoterByTokenHash(ctx, q.Tokens.HashAccessCode(code))
	if err != nil {
		return entities.Voter{}, missAsInvalid(err, domainerrors.ErrVoterNotFound)
	}
	return voter, nil
}

func (q CredentialQueries) VerifyManagerPassword(ctx context.Context, identifier string, password string) (entities.Manager, error) {
	login := strings.TrimSpace(identifier)
	if login == "" || password == "" {
		return entities.Manager{}, domainerrors.ErrInvalidCredential
	}
	manager, err := q.Repo.GetManagerByLogin(ctx, login)
	if err != nil {
		return entities.Manager{}, missAsInvalid(err, domainerrors.ErrManagerNotFound)
	}
	if !q.Hasher.Compare(manager.PasswordHash, password) {
		return entities.Manager{}, domainerrors.ErrInvalidCredential
	}
	return manager, nil
}

func (q CredentialQueries) VerifySpectatorToken(ctx context.Context, token string) (entities.Session, error) {
	value := strings.TrimSpace(token)
	if value == "" {
		return entities.Session{}, domainerrors.ErrInvalidCredential
	}
	session, err := q.Repo.GetSessionBySpectatorToken(ctx, value)
	if err != nil {
		return entities.Session{}, missAsInvalid(err, domainerrors.ErrSessionNotFound)
	}
	return session, nil
}

func (q CredentialQueries) LookupVoter(ctx context.Context, voterID int64) (entities.Voter, error) {
	return q.Repo.GetVoter(ctx, voterID)
}

func (q CredentialQueries) LookupManager(ctx context.Context, managerID int64) (entities.Manager, error) {
	return q.Repo.GetManager(ctx, managerID)
}

func (q CredentialQueries) LookupSession(ctx context.Context, sessionID int64) (entities.Session, error) {
	return q.Repo.GetSession(ctx, sessionID)
}

func missAsInvalid(err error, notFound error) error {
	if errors.Is(err, notFound) {
		return domainerrors.ErrInvalidCredential
	}
	return err
}
