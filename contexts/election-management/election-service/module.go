package electionservice

import (
	"log/slog"

	"wahlfang/contexts/election-management/election-service/adapters/crypto"
	httpadapter "wahlfang/contexts/election-management/election-service/adapters/http"
	"wahlfang/contexts/election-management/election-service/adapters/memory"
	"wahlfang/contexts/election-management/election-service/application/commands"
	"wahlfang/contexts/election-management/election-service/application/queries"
	"wahlfang/contexts/election-management/election-service/domain/services"
	"wahlfang/contexts/election-management/election-service/ports"
)

type Module struct {
	Handler     httpadapter.Handler
	Credentials queries.CredentialQueries
	Managers    commands.ManagerUseCase
	Store       *memory.Store
}

type Dependencies struct {
	Repository          ports.Repository
	CommitHook          ports.CommitHook
	Hasher              ports.PasswordHasher
	Tokens              ports.TokenGenerator
	Clock               ports.Clock
	WinnerPolicy        services.WinnerPolicy
	AllowedEmailDomains []string
	Logger              *slog.Logger
}

func NewModule(deps Dependencies) Module {
	if deps.Hasher == nil {
		deps.Hasher = crypto.BcryptHasher{}
	}
	if deps.Tokens == nil {
		deps.Tokens = crypto.RandomTokens{}
	}
	if deps.WinnerPolicy == "" {
		deps.WinnerPolicy = services.WinnerPolicyInsertionOrder
	}

	return Module{
		Handler: httpadapter.Handler{
			Sessions: commands.SessionUseCase{
				Repo:   deps.Repository,
				Tokens: deps.Tokens,
				Hook:   deps.CommitHook,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Elections: commands.ElectionUseCase{
				Repo:   deps.Repository,
				Hook:   deps.CommitHook,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Voters: commands.VoterUseCase{
				Repo:   deps.Repository,
				Tokens: deps.Tokens,
				Hook:   deps.CommitHook,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Applications: commands.ApplicationUseCase{
				Repo:   deps.Repository,
				Hook:   deps.CommitHook,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Ballots: commands.BallotUseCase{
				Repo:   deps.Repository,
				Hook:   deps.CommitHook,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Tally: queries.TallyUseCase{
				Repo:   deps.Repository,
				Policy: deps.WinnerPolicy,
				Logger: deps.Logger,
			},
			Reads: queries.SessionQueries{
				Repo: deps.Repository,
			},
			Logger: deps.Logger,
		},
		Credentials: queries.CredentialQueries{
			Repo:   deps.Repository,
			Hasher: deps.Hasher,
			Tokens: deps.Tokens,
		},
		Managers: commands.ManagerUseCase{
			Repo:                deps.Repository,
			Hasher:              deps.Hasher,
			Tokens:              deps.Tokens,
			Clock:               deps.Clock,
			AllowedEmailDomains: deps.AllowedEmailDomains,
			Logger:              deps.Logger,
		},
	}
}

func NewInMemoryModule(hook ports.CommitHook, policy services.WinnerPolicy, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:   store,
		CommitHook:   hook,
		Clock:        store,
		WinnerPolicy: policy,
		Logger:       logger,
	})
	module.Store = store
	return module
}
