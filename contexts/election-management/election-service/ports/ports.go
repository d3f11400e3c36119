package ports

import (
	"context"
	"time"

	"wahlfang/contexts/election-management/election-service/domain/entities"
	livev1 "wahlfang/contracts/gen/live/v1"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, session entities.Session) (entities.Session, error)
	UpdateSession(ctx context.Context, session entities.Session) error
	DeleteSession(ctx context.Context, sessionID int64) error
	GetSession(ctx context.Context, sessionID int64) (entities.Session, error)
	GetSessionBySpectatorToken(ctx context.Context, token string) (entities.Session, error)
	ListSessionsByManager(ctx context.Context, managerID int64) ([]entities.Session, error)
}

type ElectionRepository interface {
	CreateElection(ctx context.Context, election entities.Election) (entities.Election, error)
	UpdateElection(ctx context.Context, election entities.Election) error
	DeleteElection(ctx context.Context, electionID int64) error
	GetElection(ctx context.Context, electionID int64) (entities.Election, error)
	ListElectionsBySession(ctx context.Context, sessionID int64) ([]entities.Election, error)
}

type VoterRepository interface {
	CreateVoter(ctx context.Context, voter entities.Voter) (entities.Voter, error)
	UpdateVoter(ctx context.Context, voter entities.Voter) error
	DeleteVoter(ctx context.Context, voterID int64) error
	GetVoter(ctx context.Context, voterID int64) (entities.Voter, error)
	GetVoterByTokenHash(ctx context.Context, tokenHash string) (entities.Voter, error)
	ListVotersBySession(ctx context.Context, sessionID int64) ([]entities.Voter, error)
}

type ApplicationRepository interface {
	// CreateApplication assigns the next insertion position inside the election.
	CreateApplication(ctx context.Context, application entities.Application) (entities.Application, error)
	UpdateApplication(ctx context.Context, application entities.Application) error
	DeleteApplication(ctx context.Context, applicationID int64) error
	GetApplication(ctx context.Context, applicationID int64) (entities.Application, error)
	GetApplicationByVoter(ctx context.Context, electionID int64, voterID int64) (entities.Application, bool, error)
	ListApplicationsByElection(ctx context.Context, electionID int64) ([]entities.Application, error)
}

type ManagerRepository interface {
	CreateManager(ctx context.Context, manager entities.Manager) (entities.Manager, error)
	GetManager(ctx context.Context, managerID int64) (entities.Manager, error)
	// GetManagerByLogin matches the identifier against username or email.
	GetManagerByLogin(ctx context.Context, identifier string) (entities.Manager, error)
}

type BallotRecorder interface {
	// RecordBallot increments the counters of every chosen application and
	// marks the voter as voted in one atomic step. It fails with
	// ErrAlreadyVoted when the voter already voted in the election.
	RecordBallot(ctx context.Context, voterID int64, electionID int64, choices []entities.BallotChoice, now time.Time) error
}

type Repository interface {
	SessionRepository
	ElectionRepository
	VoterRepository
	ApplicationRepository
	ManagerRepository
	BallotRecorder
}

// CommitHook is called after a write to a session, election, voter or
// application is durable. Implementations must not fail the write.
type CommitHook interface {
	AfterCommit(ctx context.Context, event livev1.ChangeEvent)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) bool
}

type TokenGenerator interface {
	NewAccessCode() (string, error)
	NewSpectatorToken() (string, error)
	NewPassword() (string, error)
	HashAccessCode(code string) string
}

type Clock interface {
	Now() time.Time
}
