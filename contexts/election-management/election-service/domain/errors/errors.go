package errors

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid election input")
	ErrSessionNotFound       = errors.New("session not found")
	ErrElectionNotFound      = errors.New("election not found")
	ErrVoterNotFound         = errors.New("voter not found")
	ErrApplicationNotFound   = errors.New("application not found")
	ErrManagerNotFound       = errors.New("manager not found")
	ErrDuplicateManager      = errors.New("manager username or email already exists")
	ErrEmailDomainNotAllowed = errors.New("email domain is not allowed")
	ErrInvalidTransition     = errors.New("invalid election state transition")
	ErrElectionNotOpen       = errors.New("election is not open")
	ErrAlreadyVoted          = errors.New("voter already voted in this election")
	ErrVoterRevoked          = errors.New("voter access was revoked")
	ErrApplicationsClosed    = errors.New("election does not accept applications")
	ErrApplicationExists     = errors.New("voter already applied to this election")
	ErrAbstentionDisabled    = errors.New("abstention is disabled for this election")
	ErrResultsNotPublished   = errors.New("election results are not published")
	ErrInvalidCredential     = errors.New("invalid credential")
)
