package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"

	electionservice "wahlfang/contexts/election-management/election-service"
	electionentities "wahlfang/contexts/election-management/election-service/domain/entities"
	liveupdateservice "wahlfang/contexts/election-management/live-update-service"
	wsadapter "wahlfang/contexts/election-management/live-update-service/adapters/websocket"
	liveentities "wahlfang/contexts/election-management/live-update-service/domain/entities"
	_ "wahlfang/internal/platform/httpserver/docs"
)

const maxBodyBytes = 1 << 20

type Options struct {
	Addr           string
	AllowedOrigins []string
	WebSocket      wsadapter.Options
}

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	elections electionservice.Module
	live      liveupdateservice.Module
	upgrader  websocket.Upgrader
	wsOptions wsadapter.Options

	baseCtx    context.Context
	cancelBase context.CancelFunc
	httpServer *http.Server
}

func New(
	elections electionservice.Module,
	live liveupdateservice.Module,
	logger *slog.Logger,
	opts Options,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       opts.Addr,
		elections:  elections,
		live:       live,
		upgrader:   wsadapter.NewUpgrader(opts.AllowedOrigins),
		wsOptions:  opts.WebSocket,
		baseCtx:    baseCtx,
		cancelBase: cancel,
	}
	s.registerRoutes()
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return s.baseCtx
		},
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and cancels every open live
// connection, which then closes with "going away".
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancelBase()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.registerAuthRoutes()
	s.registerManagementRoutes()
	s.registerVoteRoutes()
	s.registerLiveRoutes()
}

type healthResponse struct {
	Status            string `json:"status"`
	ActiveConnections int64  `json:"active_connections"`
}

// handleHealth godoc
// @Summary Health and live connection count
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /healthz [get]
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:            "ok",
		ActiveConnections: s.live.Handler.StatsHandler().ActiveConnections,
	})
}

// authenticate resolves the bearer token of a REST request. Every failure
// is answered with the same 401 body.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (liveentities.Principal, bool) {
	token := bearerToken(r)
	if token == "" {
		writeLiveError(w, http.StatusUnauthorized, "unauthorized", "authentication failed")
		return liveentities.Principal{}, false
	}
	principal, err := s.live.Handler.Authenticate(r.Context(), token)
	if err != nil {
		writeLiveDomainError(w, err)
		return liveentities.Principal{}, false
	}
	return principal, true
}

func (s *Server) requireManager(w http.ResponseWriter, r *http.Request) (int64, bool) {
	principal, ok := s.authenticate(w, r)
	if !ok {
		return 0, false
	}
	if principal.Kind != liveentities.PrincipalManager {
		writeLiveError(w, http.StatusForbidden, "forbidden", "not allowed")
		return 0, false
	}
	return principal.ManagerID, true
}

func (s *Server) requireVoter(w http.ResponseWriter, r *http.Request) (liveentities.Principal, bool) {
	principal, ok := s.authenticate(w, r)
	if !ok {
		return liveentities.Principal{}, false
	}
	if principal.Kind != liveentities.PrincipalVoter {
		writeLiveError(w, http.StatusForbidden, "forbidden", "not allowed")
		return liveentities.Principal{}, false
	}
	return principal, true
}

// actorFor maps an authenticated principal onto the caller the election
// use cases check ownership and publication against.
func actorFor(principal liveentities.Principal) electionentities.Actor {
	switch principal.Kind {
	case liveentities.PrincipalManager:
		return electionentities.ManagerActor(principal.ManagerID)
	case liveentities.PrincipalVoter:
		return electionentities.VoterActor(principal.VoterID, principal.SessionID)
	default:
		return electionentities.SpectatorActor(principal.SessionID)
	}
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeElectionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
