package httpadapter

import (
	"context"
	"log/slog"

	"wahlfang/contexts/election-management/live-update-service/application/auth"
	"wahlfang/contexts/election-management/live-update-service/application/gateway"
	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	"wahlfang/contexts/election-management/live-update-service/ports"
	httptransport "wahlfang/contexts/election-management/live-update-service/transport/http"
)

type Handler struct {
	Tokens   auth.TokenService
	Resolver auth.Resolver
	Gateway  *gateway.Gateway
	Logger   *slog.Logger
}

// IssueVoterTokenHandler godoc
// @Summary Issue voter token
// @Description Exchanges an access code for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.VoterTokenRequest true "Request body"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/auth/v1/voter/token [post]
func (h Handler) IssueVoterTokenHandler(
	ctx context.Context,
	req httptransport.VoterTokenRequest,
) (httptransport.TokenResponse, error) {
	issued, err := h.Tokens.Issue(ctx, entities.AccessCode(req.AccessCode), entities.PrincipalVoter)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return mapToken(issued), nil
}

// IssueManagerTokenHandler godoc
// @Summary Issue manager token
// @Description Exchanges a username or email and password for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.ManagerTokenRequest true "Request body"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/auth/v1/manager/token [post]
func (h Handler) IssueManagerTokenHandler(
	ctx context.Context,
	req httptransport.ManagerTokenRequest,
) (httptransport.TokenResponse, error) {
	issued, err := h.Tokens.Issue(ctx, entities.Password(req.Username, req.Password), entities.PrincipalManager)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return mapToken(issued), nil
}

// IssueSpectatorTokenHandler godoc
// @Summary Issue spectator token
// @Description Exchanges a session spectator token for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.SpectatorTokenRequest true "Request body"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/auth/v1/spectator/token [post]
func (h Handler) IssueSpectatorTokenHandler(
	ctx context.Context,
	req httptransport.SpectatorTokenRequest,
) (httptransport.TokenResponse, error) {
	issued, err := h.Tokens.Issue(ctx, entities.SpectatorToken(req.Token), entities.PrincipalSpectator)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return mapToken(issued), nil
}

// Authenticate resolves a bearer token presented on a REST request.
func (h Handler) Authenticate(ctx context.Context, bearer string) (entities.Principal, error) {
	return h.Resolver.Resolve(ctx, entities.Bearer(bearer))
}

// WhoAmIHandler godoc
// @Summary Current principal
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.PrincipalResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/auth/v1/me [get]
func (h Handler) WhoAmIHandler(principal entities.Principal) httptransport.PrincipalResponse {
	return httptransport.PrincipalResponse{
		UserType:  string(principal.Kind),
		VoterID:   principal.VoterID,
		ManagerID: principal.ManagerID,
		SessionID: principal.SessionID,
	}
}

// ServeConnection godoc
// @Summary Live update socket
// @Description Websocket endpoint. Each message is {"type":"update","table":...}; manager sockets also carry session_id. Authentication failures close with 4401.
// @Tags live
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token query string false "Bearer token"
// @Param access_code query string false "Voter access code (/ws/vote only)"
// @Param spectator_token query string false "Spectator token (/ws/vote only)"
// @Success 101
// @Router /ws/vote [get]
// @Router /ws/management [get]
func (h Handler) ServeConnection(
	ctx context.Context,
	conn ports.Conn,
	credential entities.Credential,
	audience entities.Audience,
) error {
	return h.Gateway.Serve(ctx, conn, credential, audience)
}

// StatsHandler reports the number of open live connections.
func (h Handler) StatsHandler() httptransport.LiveStatsResponse {
	return httptransport.LiveStatsResponse{ActiveConnections: h.Gateway.Active()}
}

func mapToken(issued entities.IssuedToken) httptransport.TokenResponse {
	return httptransport.TokenResponse{
		AccessToken: issued.Token,
		TokenType:   "Bearer",
		UserType:    string(issued.UserType),
		ExpiresAt:   issued.ExpiresAt,
		VoterID:     issued.Principal.VoterID,
		ManagerID:   issued.Principal.ManagerID,
		SessionID:   issued.Principal.SessionID,
	}
}
