package jwtadapter

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	domainerrors "wahlfang/contexts/election-management/live-update-service/domain/errors"
)

const DefaultIssuer = "wahlfang"

type claims struct {
	UserType  string `json:"user_type"`
	SessionID int64  `json:"session_id,omitempty"`
	jwt.RegisteredClaims
}

// Signer issues and verifies HS256 tokens. The subject is the voter or
// manager id; spectators are identified by session_id alone.
type Signer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewSigner(secret []byte, issuer string, now func() time.Time) (*Signer, error) {
	if len(secret) < 16 {
		return nil, errors.New("jwt secret must be at least 16 bytes")
	}
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if now == nil {
		now = time.Now
	}
	return &Signer{secret: secret, issuer: issuer, now: now}, nil
}

func (s *Signer) Sign(in entities.TokenClaims) (string, error) {
	principal := in.Principal
	if !principal.Valid() {
		return "", domainerrors.ErrInvalidPrincipal
	}
	body := claims{
		UserType: string(principal.Kind),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        in.TokenID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(in.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(in.ExpiresAt),
		},
	}
	if principal.Kind != entities.PrincipalSpectator {
		body.Subject = strconv.FormatInt(principal.SubjectID(), 10)
	}
	if principal.Kind != entities.PrincipalManager {
		body.SessionID = principal.SessionID
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, body).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *Signer) Verify(raw string) (entities.TokenClaims, error) {
	var body claims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	_, err := parser.ParseWithClaims(raw, &body, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return entities.TokenClaims{}, fmt.Errorf("%w: %v", domainerrors.ErrInvalidToken, err)
	}

	principal, err := principalFrom(body)
	if err != nil {
		return entities.TokenClaims{}, err
	}
	out := entities.TokenClaims{
		TokenID:   body.ID,
		Principal: principal,
	}
	if body.IssuedAt != nil {
		out.IssuedAt = body.IssuedAt.Time
	}
	if body.ExpiresAt != nil {
		out.ExpiresAt = body.ExpiresAt.Time
	}
	return out, nil
}

func principalFrom(body claims) (entities.Principal, error) {
	var principal entities.Principal
	switch entities.PrincipalKind(body.UserType) {
	case entities.PrincipalVoter:
		id, err := strconv.ParseInt(body.Subject, 10, 64)
		if err != nil {
			return entities.Principal{}, domainerrors.ErrInvalidToken
		}
		principal = entities.VoterPrincipal(id, body.SessionID)
	case entities.PrincipalManager:
		id, err := strconv.ParseInt(body.Subject, 10, 64)
		if err != nil {
			return entities.Principal{}, domainerrors.ErrInvalidToken
		}
		principal = entities.ManagerPrincipal(id)
	case entities.PrincipalSpectator:
		principal = entities.SpectatorPrincipal(body.SessionID)
	default:
		return entities.Principal{}, domainerrors.ErrInvalidToken
	}
	if !principal.Valid() {
		return entities.Principal{}, domainerrors.ErrInvalidToken
	}
	return principal, nil
}
