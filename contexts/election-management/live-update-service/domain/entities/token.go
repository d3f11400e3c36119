package entities

import "time"

type TokenClaims struct {
	TokenID   string
	Principal Principal
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type IssuedToken struct {
	Token     string
	UserType  PrincipalKind
	Principal Principal
	ExpiresAt time.Time
}
