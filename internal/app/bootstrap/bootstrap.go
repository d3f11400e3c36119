package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	electionservice "wahlfang/contexts/election-management/election-service"
	electionpostgres "wahlfang/contexts/election-management/election-service/adapters/postgres"
	"wahlfang/contexts/election-management/election-service/application/commands"
	"wahlfang/contexts/election-management/election-service/domain/services"
	electionports "wahlfang/contexts/election-management/election-service/ports"
	liveupdateservice "wahlfang/contexts/election-management/live-update-service"
	jwtadapter "wahlfang/contexts/election-management/live-update-service/adapters/jwt"
	wsadapter "wahlfang/contexts/election-management/live-update-service/adapters/websocket"
	liveports "wahlfang/contexts/election-management/live-update-service/ports"
	"wahlfang/internal/app/bridges"
	"wahlfang/internal/platform/config"
	"wahlfang/internal/platform/db"
	"wahlfang/internal/platform/httpserver"
	"wahlfang/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

const shutdownTimeout = 10 * time.Second

type APIApp struct {
	server    *httpserver.Server
	database  *db.Database
	redisBus  *messaging.RedisBus
	elections electionservice.Module
	live      liveupdateservice.Module
	logger    *slog.Logger
}

// AdminApp serves the operator CLI: schema migration and manager creation.
type AdminApp struct {
	database *db.Database
	managers commands.ManagerUseCase
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return BuildAPIWithConfig(context.Background(), cfg)
}

func BuildAPIWithConfig(ctx context.Context, cfg config.Config) (*APIApp, error) {
	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	policy, err := services.ParseWinnerPolicy(cfg.TallyWinnerPolicy)
	if err != nil {
		return nil, err
	}
	secret := strings.TrimSpace(cfg.JWTSecret)
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	signer, err := jwtadapter.NewSigner([]byte(secret), cfg.ServiceName, nil)
	if err != nil {
		return nil, err
	}

	app := &APIApp{logger: logger}
	localBus := messaging.NewMemoryBus(logger)
	var bus liveports.Bus = localBus
	if cfg.BusDriver == config.BusRedis {
		client, err := messaging.ConnectRedis(ctx, messaging.RedisConfig{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		app.redisBus = messaging.NewRedisBus(client, cfg.RedisChannelPrefix, localBus, logger)
		bus = app.redisBus
	}

	// The listener is the election module's commit hook, and the live module
	// authenticates against the election module, so the listener is built first.
	listener := liveupdateservice.NewListener(bus, cfg.EnableManagerFanout, cfg.PublishTimeout, logger)

	repo, database, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	app.database = database

	if database != nil {
		app.elections = electionservice.NewModule(electionservice.Dependencies{
			Repository:          repo,
			CommitHook:          listener,
			Clock:               electionpostgres.SystemClock{},
			WinnerPolicy:        policy,
			AllowedEmailDomains: cfg.ManagerEmailDomains,
			Logger:              logger,
		})
	} else {
		app.elections = electionservice.NewInMemoryModule(listener, policy, logger)
		app.elections.Managers.AllowedEmailDomains = cfg.ManagerEmailDomains
	}

	app.live = liveupdateservice.NewModule(liveupdateservice.Dependencies{
		Credentials: bridges.CredentialStore{Credentials: app.elections.Credentials},
		Bus:         bus,
		Signer:      signer,
		TokenTTL:    cfg.JWTTTL,
		SinkBuffer:  cfg.SinkBuffer,
		Listener:    listener,
		Logger:      logger,
	})

	app.server = httpserver.New(app.elections, app.live, logger, httpserver.Options{
		Addr:           normalizeAddr(cfg.HTTPPort),
		AllowedOrigins: cfg.WSAllowedOrigins,
		WebSocket: wsadapter.Options{
			WriteTimeout: cfg.WSWriteTimeout,
			PingInterval: cfg.WSPingInterval,
		},
	})
	return app, nil
}

func BuildAdmin(ctx context.Context) (*AdminApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseDriver == config.DatabaseMemory {
		return nil, errors.New("admin commands need a persistent DATABASE_DRIVER")
	}
	logger := slog.Default().With("service", cfg.ServiceName, "process", "admin")

	repo, database, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	module := electionservice.NewModule(electionservice.Dependencies{
		Repository:          repo,
		Clock:               electionpostgres.SystemClock{},
		AllowedEmailDomains: cfg.ManagerEmailDomains,
		Logger:              logger,
	})
	return &AdminApp{
		database: database,
		managers: module.Managers,
		logger:   logger,
	}, nil
}

// openRepository returns a nil repository and database for the memory
// driver; the caller then uses the in-memory store.
func openRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (electionports.Repository, *db.Database, error) {
	var dsn string
	switch cfg.DatabaseDriver {
	case config.DatabaseMemory:
		return nil, nil, nil
	case config.DatabasePostgres:
		dsn = cfg.PostgresDSN
		if strings.TrimSpace(dsn) == "" {
			return nil, nil, errors.New("POSTGRES_DSN is required")
		}
	case config.DatabaseSQLite:
		dsn = cfg.SQLitePath
	}

	database, err := db.Connect(cfg.DatabaseDriver, dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := electionpostgres.Migrate(ctx, database.DB); err != nil {
		_ = database.Close()
		return nil, nil, fmt.Errorf("migrate schema: %w", err)
	}
	return electionpostgres.NewRepository(database.DB, logger), database, nil
}

// Run serves HTTP and, with the redis bus, relays remote notifications until
// ctx is cancelled or one of them fails.
func (a *APIApp) Run(ctx context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"redis_bus", a.redisBus != nil,
		)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(a.server.Start)
	if a.redisBus != nil {
		group.Go(func() error {
			return a.redisBus.Run(groupCtx)
		})
	}
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(groupCtx), shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func (a *APIApp) Close() error {
	var errs []error
	if a.redisBus != nil {
		errs = append(errs, a.redisBus.Close())
	}
	if a.database != nil {
		errs = append(errs, a.database.Close())
	}
	return errors.Join(errs...)
}

func (a *AdminApp) Migrate(ctx context.Context) error {
	// openRepository already migrated; run again so the command is explicit
	// and idempotent.
	if err := electionpostgres.Migrate(ctx, a.database.DB); err != nil {
		return err
	}
	a.logger.Info("schema migrated",
		"event", "admin_schema_migrated",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"driver", a.database.Driver,
	)
	return nil
}

func (a *AdminApp) CreateManager(ctx context.Context, cmd commands.CreateManagerCommand) (commands.CreateManagerResult, error) {
	return a.managers.CreateManager(ctx, cmd)
}

func (a *AdminApp) Close() error {
	return a.database.Close()
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
