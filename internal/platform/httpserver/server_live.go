package httpserver

import (
	"errors"
	"net/http"
	"strings"

	wsadapter "wahlfang/contexts/election-management/live-update-service/adapters/websocket"
	liveentities "wahlfang/contexts/election-management/live-update-service/domain/entities"
	liveerrors "wahlfang/contexts/election-management/live-update-service/domain/errors"
	livehttp "wahlfang/contexts/election-management/live-update-service/transport/http"
)

func (s *Server) registerAuthRoutes() {
	s.mux.HandleFunc("POST /api/auth/v1/voter/token", s.handleVoterToken)
	s.mux.HandleFunc("POST /api/auth/v1/manager/token", s.handleManagerToken)
	s.mux.HandleFunc("POST /api/auth/v1/spectator/token", s.handleSpectatorToken)
	s.mux.HandleFunc("GET /api/auth/v1/me", s.handleWhoAmI)
}

func (s *Server) registerLiveRoutes() {
	s.mux.HandleFunc("GET /ws/vote", s.handleLive(liveentities.AudienceVoter))
	s.mux.HandleFunc("GET /ws/management", s.handleLive(liveentities.AudienceManager))
}

func (s *Server) handleVoterToken(w http.ResponseWriter, r *http.Request) {
	var req livehttp.VoterTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.live.Handler.IssueVoterTokenHandler(r.Context(), req)
	if err != nil {
		writeLiveDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleManagerToken(w http.ResponseWriter, r *http.Request) {
	var req livehttp.ManagerTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.live.Handler.IssueManagerTokenHandler(r.Context(), req)
	if err != nil {
		writeLiveDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSpectatorToken(w http.ResponseWriter, r *http.Request) {
	var req livehttp.SpectatorTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.live.Handler.IssueSpectatorTokenHandler(r.Context(), req)
	if err != nil {
		writeLiveDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.live.Handler.WhoAmIHandler(principal))
}

// handleLive upgrades first and lets the gateway authenticate, so every
// rejection reaches the client as the same close frame.
func (s *Server) handleLive(audience liveentities.Audience) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		credential := liveCredential(r, audience)

		ws, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logger.Warn("websocket upgrade failed",
				"event", "live_upgrade_failed",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"audience", string(audience),
				"error", err.Error(),
			)
			return
		}
		conn := wsadapter.NewConn(ws, s.wsOptions)
		_ = s.live.Handler.ServeConnection(r.Context(), conn, credential, audience)
	}
}

// liveCredential reads the connection credential. Browsers cannot set
// headers on websocket requests, so query parameters are accepted too.
// Access codes and spectator tokens are only honoured on the voter endpoint.
func liveCredential(r *http.Request, audience liveentities.Audience) liveentities.Credential {
	query := r.URL.Query()
	if token := bearerToken(r); token != "" {
		return liveentities.Bearer(token)
	}
	if token := strings.TrimSpace(query.Get("token")); token != "" {
		return liveentities.Bearer(token)
	}
	if audience == liveentities.AudienceVoter {
		if code := strings.TrimSpace(query.Get("access_code")); code != "" {
			return liveentities.AccessCode(code)
		}
		if token := strings.TrimSpace(query.Get("spectator_token")); token != "" {
			return liveentities.SpectatorToken(token)
		}
	}
	return liveentities.Bearer("")
}

func writeLiveDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, liveerrors.ErrInvalidCredential),
		errors.Is(err, liveerrors.ErrRevoked),
		errors.Is(err, liveerrors.ErrInvalidToken):
		writeLiveError(w, http.StatusUnauthorized, "unauthorized", "authentication failed")
	case errors.Is(err, liveerrors.ErrWrongAudience):
		writeLiveError(w, http.StatusForbidden, "forbidden", "not allowed")
	case errors.Is(err, liveerrors.ErrUnsupportedCredential),
		errors.Is(err, liveerrors.ErrInvalidInput):
		writeLiveError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeLiveError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLiveError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, livehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
