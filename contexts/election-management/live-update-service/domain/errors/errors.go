package errors

import "errors"

var (
	ErrInvalidCredential     = errors.New("invalid credential")
	ErrRevoked               = errors.New("credential revoked")
	ErrUnsupportedCredential = errors.New("unsupported credential kind")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrWrongAudience         = errors.New("principal not allowed on this endpoint")
	ErrInvalidPrincipal      = errors.New("invalid principal")
	ErrInvalidInput          = errors.New("invalid input")
)
