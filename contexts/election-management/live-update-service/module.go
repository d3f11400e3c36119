package liveupdateservice

import (
	"log/slog"
	"time"

	httpadapter "wahlfang/contexts/election-management/live-update-service/adapters/http"
	"wahlfang/contexts/election-management/live-update-service/adapters/memory"
	"wahlfang/contexts/election-management/live-update-service/application/auth"
	"wahlfang/contexts/election-management/live-update-service/application/gateway"
	"wahlfang/contexts/election-management/live-update-service/application/listener"
	"wahlfang/contexts/election-management/live-update-service/ports"
)

type Module struct {
	Handler  httpadapter.Handler
	Listener listener.Listener
}

type Dependencies struct {
	Credentials ports.CredentialStore
	Bus         ports.Bus
	Signer      ports.TokenSigner
	Clock       ports.Clock
	IDs         ports.IDGenerator
	TokenTTL    time.Duration
	SinkBuffer  int
	Listener    listener.Listener
	Logger      *slog.Logger
}

// NewListener builds the commit hook on its own. The persistence module
// needs it before the credential store it backs exists.
func NewListener(bus ports.Bus, managerFanout bool, publishTimeout time.Duration, logger *slog.Logger) listener.Listener {
	return listener.Listener{
		Bus:            bus,
		ManagerFanout:  managerFanout,
		PublishTimeout: publishTimeout,
		Logger:         logger,
	}
}

func NewModule(deps Dependencies) Module {
	if deps.Clock == nil {
		deps.Clock = memory.SystemClock{}
	}
	if deps.IDs == nil {
		deps.IDs = memory.UUIDGenerator{}
	}
	if deps.Listener.Bus == nil {
		deps.Listener = NewListener(deps.Bus, false, 0, deps.Logger)
	}

	resolver := auth.Resolver{
		Store:  deps.Credentials,
		Tokens: deps.Signer,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Tokens: auth.TokenService{
				Resolver: resolver,
				Signer:   deps.Signer,
				Clock:    deps.Clock,
				IDs:      deps.IDs,
				TTL:      deps.TokenTTL,
				Logger:   deps.Logger,
			},
			Resolver: resolver,
			Gateway:  gateway.New(resolver, deps.Bus, deps.Clock, deps.IDs, deps.SinkBuffer, deps.Logger),
			Logger:   deps.Logger,
		},
		Listener: deps.Listener,
	}
}
