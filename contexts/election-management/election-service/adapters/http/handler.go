package httpadapter

import (
	"context"
	"log/slog"

	"wahlfang/contexts/election-management/election-service/application/commands"
	"wahlfang/contexts/election-management/election-service/application/queries"
	"wahlfang/contexts/election-management/election-service/domain/entities"
	httptransport "wahlfang/contexts/election-management/election-service/transport/http"
)

type Handler struct {
	Sessions     commands.SessionUseCase
	Elections    commands.ElectionUseCase
	Voters       commands.VoterUseCase
	Applications commands.ApplicationUseCase
	Ballots      commands.BallotUseCase
	Tally        queries.TallyUseCase
	Reads        queries.SessionQueries
	Logger       *slog.Logger
}

// ListSessionsHandler godoc
// @Summary List managed sessions
// @Description Returns every session the calling manager manages.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ListSessionsResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/sessions [get]
func (h Handler) ListSessionsHandler(ctx context.Context, managerID int64) (httptransport.ListSessionsResponse, error) {
	sessions, err := h.Reads.ListManagedSessions(ctx, managerID)
	if err != nil {
		return httptransport.ListSessionsResponse{}, err
	}
	items := make([]httptransport.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, mapSession(session))
	}
	return httptransport.ListSessionsResponse{Items: items}, nil
}

// GetSessionHandler godoc
// @Summary Get session detail
// @Description Returns a managed session with its elections and voters.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path int true "Session id"
// @Success 200 {object} httptransport.SessionDetailResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/sessions/{session_id} [get]
func (h Handler) GetSessionHandler(ctx context.Context, managerID int64, sessionID int64) (httptransport.SessionDetailResponse, error) {
	detail, err := h.Reads.GetManagedSession(ctx, managerID, sessionID)
	if err != nil {
		return httptransport.SessionDetailResponse{}, err
	}
	resp := httptransport.SessionDetailResponse{
		Session:   mapSession(detail.Session),
		Elections: make([]httptransport.ElectionResponse, 0, len(detail.Elections)),
		Voters:    make([]httptransport.VoterResponse, 0, len(detail.Voters)),
	}
	for _, election := range detail.Elections {
		resp.Elections = append(resp.Elections, mapElection(election))
	}
	for _, voter := range detail.Voters {
		resp.Voters = append(resp.Voters, mapVoter(voter))
	}
	return resp, nil
}

// CreateSessionHandler godoc
// @Summary Create session
// @Description Creates a session managed by the caller and issues its spectator token.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateSessionRequest true "Request body"
// @Success 201 {object} httptransport.SessionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/sessions [post]
func (h Handler) CreateSessionHandler(
	ctx context.Context,
	managerID int64,
	req httptransport.CreateSessionRequest,
) (httptransport.SessionResponse, error) {
	session, err := h.Sessions.CreateSession(ctx, commands.CreateSessionCommand{
		ManagerID:   managerID,
		Title:       req.Title,
		MeetingLink: req.MeetingLink,
	})
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return mapSession(session), nil
}

// UpdateSessionHandler godoc
// @Summary Update session
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path int true "Session id"
// @Param request body httptransport.UpdateSessionRequest true "Request body"
// @Success 200 {object} httptransport.SessionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/sessions/{session_id} [patch]
func (h Handler) UpdateSessionHandler(
	ctx context.Context,
	managerID int64,
	sessionID int64,
	req httptransport.UpdateSessionRequest,
) (httptransport.SessionResponse, error) {
	session, err := h.Sessions.UpdateSession(ctx, commands.UpdateSessionCommand{
		ManagerID:   managerID,
		SessionID:   sessionID,
		Title:       req.Title,
		MeetingLink: req.MeetingLink,
	})
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return mapSession(session), nil
}

// AddSessionManagerHandler godoc
// @Summary Add session manager
// @Description Adds another manager, found by username or email, to a managed session.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path int true "Session id"
// @Param request body httptransport.AddSessionManagerRequest true "Request body"
// @Success 200 {object} httptransport.SessionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/sessions/{session_id}/managers [post]
func (h Handler) AddSessionManagerHandler(
	ctx context.Context,
	managerID int64,
	sessionID int64,
	req httptransport.AddSessionManagerRequest,
) (httptransport.SessionResponse, error) {
	session, err := h.Sessions.AddSessionManager(ctx, commands.AddSessionManagerCommand{
		ManagerID:      managerID,
		SessionID:      sessionID,
		CoManagerLogin: req.Login,
	})
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return mapSession(session), nil
}

// DeleteSessionHandler godoc
// @Summary Delete session
// @Description Deletes the session with its elections, applications and voters.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path int true "Session id"
// @Success 204
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/sessions/{session_id} [delete]
func (h Handler) DeleteSessionHandler(ctx context.Context, managerID int64, sessionID int64) error {
	return h.Sessions.DeleteSession(ctx, managerID, sessionID)
}

// ListElectionsHandler godoc
// @Summary List session elections
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path int true "Session id"
// @Success 200 {object} httptransport.ListElectionsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/sessions/{session_id}/elections [get]
func (h Handler) ListElectionsHandler(ctx context.Context, actor entities.Actor, sessionID int64) (httptransport.ListElectionsResponse, error) {
	elections, err := h.Reads.ListElections(ctx, actor, sessionID)
	if err != nil {
		return httptransport.ListElectionsResponse{}, err
	}
	items := make([]httptransport.ElectionResponse, 0, len(elections))
	for _, election := range elections {
		items = append(items, mapElection(election))
	}
	return httptransport.ListElectionsResponse{Items: items}, nil
}

// CreateElectionHandler godoc
// @Summary Create election
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path int true "Session id"
// @Param request body httptransport.CreateElectionRequest true "Request body"
// @Success 201 {object} httptransport.ElectionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/sessions/{session_id}/elections [post]
func (h Handler) CreateElectionHandler(
	ctx context.Context,
	managerID int64,
	sessionID int64,
	req httptransport.CreateElectionRequest,
) (httptransport.ElectionResponse, error) {
	election, err := h.Elections.CreateElection(ctx, commands.CreateElectionCommand{
		ManagerID:         managerID,
		SessionID:         sessionID,
		Title:             req.Title,
		MaxWinners:        req.MaxWinners,
		CanApply:          req.CanApply,
		DisableAbstention: req.DisableAbstention,
	})
	if err != nil {
		return httptransport.ElectionResponse{}, err
	}
	return mapElection(election), nil
}

// UpdateElectionHandler godoc
// @Summary Update election
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param election_id path int true "Election id"
// @Param request body httptransport.UpdateElectionRequest true "Request body"
// @Success 200 {object} httptransport.ElectionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/elections/{election_id} [patch]
func (h Handler) UpdateElectionHandler(
	ctx context.Context,
	managerID int64,
	electionID int64,
	req httptransport.UpdateElectionRequest,
) (httptransport.ElectionResponse, error) {
	election, err := h.Elections.UpdateElection(ctx, commands.UpdateElectionCommand{
		ManagerID:         managerID,
		ElectionID:        electionID,
		Title:             req.Title,
		MaxWinners:        req.MaxWinners,
		ClearMaxWinners:   req.ClearMaxWinners,
		CanApply:          req.CanApply,
		DisableAbstention: req.DisableAbstention,
	})
	if err != nil {
		return httptransport.ElectionResponse{}, err
	}
	return mapElection(election), nil
}

// OpenElectionHandler godoc
// @Summary Open election
// @Description Starts accepting ballots.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param election_id path int true "Election id"
// @Success 200 {object} httptransport.ElectionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/elections/{election_id}/open [post]
func (h Handler) OpenElectionHandler(ctx context.Context, managerID int64, electionID int64) (httptransport.ElectionResponse, error) {
	election, err := h.Elections.OpenElection(ctx, managerID, electionID)
	if err != nil {
		return httptransport.ElectionResponse{}, err
	}
	return mapElection(election), nil
}

// CloseElectionHandler godoc
// @Summary Close election
// @Description Stops accepting ballots.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param election_id path int true "Election id"
// @Success 200 {object} httptransport.ElectionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/elections/{election_id}/close [post]
func (h Handler) CloseElectionHandler(ctx context.Context, managerID int64, electionID int64) (httptransport.ElectionResponse, error) {
	election, err := h.Elections.CloseElection(ctx, managerID, electionID)
	if err != nil {
		return httptransport.ElectionResponse{}, err
	}
	return mapElection(election), nil
}

// SetPublicationHandler godoc
// @Summary Publish or unpublish results
// @Description Published results are visible to the session's voters and spectators.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param election_id path int true "Election id"
// @Success 200 {object} httptransport.ElectionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/elections/{election_id}/publish [post]
// @Router /api/management/v1/elections/{election_id}/unpublish [post]
func (h Handler) SetPublicationHandler(
	ctx context.Context,
	managerID int64,
	electionID int64,
	publication entities.ResultPublication,
) (httptransport.ElectionResponse, error) {
	election, err := h.Elections.SetPublication(ctx, commands.SetPublicationCommand{
		ManagerID:   managerID,
		ElectionID:  electionID,
		Publication: publication,
	})
	if err != nil {
		return httptransport.ElectionResponse{}, err
	}
	return mapElection(election), nil
}

// DeleteElectionHandler godoc
// @Summary Delete election
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param election_id path int true "Election id"
// @Success 204
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/elections/{election_id} [delete]
func (h Handler) DeleteElectionHandler(ctx context.Context, managerID int64, electionID int64) error {
	return h.Elections.DeleteElection(ctx, managerID, electionID)
}

// SummaryHandler godoc
// @Summary Election result summary
// @Description Managers always see the tally. Voters and spectators of the session see it once results are published.
// @Tags vote
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param election_id path int true "Election id"
// @Success 200 {object} httptransport.SummaryResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/elections/{election_id}/summary [get]
// @Router /api/vote/v1/elections/{election_id}/summary [get]
func (h Handler) SummaryHandler(ctx context.Context, actor entities.Actor, electionID int64) (httptransport.SummaryResponse, error) {
	items, err := h.Tally.Summarize(ctx, actor, electionID)
	if err != nil {
		return httptransport.SummaryResponse{}, err
	}
	resp := httptransport.SummaryResponse{
		ElectionID:   electionID,
		WinnerPolicy: string(h.Tally.Policy),
		Items:        make([]httptransport.SummaryItem, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, httptransport.SummaryItem{
			ApplicationID:   item.ApplicationID,
			DisplayName:     item.DisplayName,
			Email:           item.Email,
			VotesAccept:     item.VotesAccept,
			VotesReject:     item.VotesReject,
			VotesAbstention: item.VotesAbstention,
			Elected:         item.Elected,
		})
	}
	return resp, nil
}

// AddVoterHandler godoc
// @Summary Add voter
// @Description Creates a voter and returns its access code once.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path int true "Session id"
// @Param request body httptransport.AddVoterRequest true "Request body"
// @Success 201 {object} httptransport.IssuedVoterResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/sessions/{session_id}/voters [post]
func (h Handler) AddVoterHandler(
	ctx context.Context,
	managerID int64,
	sessionID int64,
	req httptransport.AddVoterRequest,
) (httptransport.IssuedVoterResponse, error) {
	issued, err := h.Voters.AddVoter(ctx, commands.AddVoterCommand{
		ManagerID: managerID,
		SessionID: sessionID,
		Name:      req.Name,
		Email:     req.Email,
	})
	if err != nil {
		return httptransport.IssuedVoterResponse{}, err
	}
	return httptransport.IssuedVoterResponse{
		Voter:      mapVoter(issued.Voter),
		AccessCode: issued.AccessCode,
	}, nil
}

// InvalidateVoterHandler godoc
// @Summary Invalidate voter
// @Description Revokes the voter's access code and open tokens.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param voter_id path int true "Voter id"
// @Success 200 {object} httptransport.VoterResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/voters/{voter_id}/invalidate [post]
func (h Handler) InvalidateVoterHandler(ctx context.Context, managerID int64, voterID int64) (httptransport.VoterResponse, error) {
	voter, err := h.Voters.InvalidateVoter(ctx, managerID, voterID)
	if err != nil {
		return httptransport.VoterResponse{}, err
	}
	return mapVoter(voter), nil
}

// DeleteVoterHandler godoc
// @Summary Delete voter
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param voter_id path int true "Voter id"
// @Success 204
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/voters/{voter_id} [delete]
func (h Handler) DeleteVoterHandler(ctx context.Context, managerID int64, voterID int64) error {
	return h.Voters.DeleteVoter(ctx, managerID, voterID)
}

// AddApplicationHandler godoc
// @Summary Add application
// @Description Adds a candidate application to an election.
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param election_id path int true "Election id"
// @Param request body httptransport.ApplicationRequest true "Request body"
// @Success 201 {object} httptransport.ApplicationResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/elections/{election_id}/applications [post]
func (h Handler) AddApplicationHandler(
	ctx context.Context,
	managerID int64,
	electionID int64,
	req httptransport.ApplicationRequest,
) (httptransport.ApplicationResponse, error) {
	app, err := h.Applications.AddApplication(ctx, commands.AddApplicationCommand{
		ManagerID:   managerID,
		ElectionID:  electionID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Text:        req.Text,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return mapApplication(app), nil
}

// UpdateApplicationHandler godoc
// @Summary Update application
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application_id path int true "Application id"
// @Param request body httptransport.UpdateApplicationRequest true "Request body"
// @Success 200 {object} httptransport.ApplicationResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/applications/{application_id} [patch]
func (h Handler) UpdateApplicationHandler(
	ctx context.Context,
	managerID int64,
	applicationID int64,
	req httptransport.UpdateApplicationRequest,
) (httptransport.ApplicationResponse, error) {
	app, err := h.Applications.UpdateApplication(ctx, commands.UpdateApplicationCommand{
		ManagerID:     managerID,
		ApplicationID: applicationID,
		DisplayName:   req.DisplayName,
		Email:         req.Email,
		Text:          req.Text,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return mapApplication(app), nil
}

// DeleteApplicationHandler godoc
// @Summary Delete application
// @Tags management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application_id path int true "Application id"
// @Success 204
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/management/v1/applications/{application_id} [delete]
func (h Handler) DeleteApplicationHandler(ctx context.Context, managerID int64, applicationID int64) error {
	return h.Applications.DeleteApplication(ctx, managerID, applicationID)
}

// ApplyHandler godoc
// @Summary Apply as candidate
// @Description Lets a voter apply to an election that accepts applications. One application per voter.
// @Tags vote
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param election_id path int true "Election id"
// @Param request body httptransport.ApplicationRequest true "Request body"
// @Success 201 {object} httptransport.ApplicationResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/vote/v1/elections/{election_id}/application [post]
func (h Handler) ApplyHandler(
	ctx context.Context,
	voterID int64,
	electionID int64,
	req httptransport.ApplicationRequest,
) (httptransport.ApplicationResponse, error) {
	app, err := h.Applications.ApplyAsVoter(ctx, commands.ApplyCommand{
		VoterID:     voterID,
		ElectionID:  electionID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Text:        req.Text,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return mapApplication(app), nil
}

// CastBallotHandler godoc
// @Summary Cast ballot
// @Description Records one ballot per voter in an open election.
// @Tags vote
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param election_id path int true "Election id"
// @Param request body httptransport.CastBallotRequest true "Request body"
// @Success 200 {object} httptransport.CastBallotResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/vote/v1/elections/{election_id}/ballot [post]
func (h Handler) CastBallotHandler(
	ctx context.Context,
	voterID int64,
	electionID int64,
	req httptransport.CastBallotRequest,
) (httptransport.CastBallotResponse, error) {
	choices := make([]entities.BallotChoice, 0, len(req.Choices))
	for _, choice := range req.Choices {
		choices = append(choices, entities.BallotChoice{
			ApplicationID: choice.ApplicationID,
			Choice:        entities.Choice(choice.Choice),
		})
	}
	if err := h.Ballots.CastBallot(ctx, commands.CastBallotCommand{
		VoterID:    voterID,
		ElectionID: electionID,
		Choices:    choices,
	}); err != nil {
		return httptransport.CastBallotResponse{}, err
	}
	return httptransport.CastBallotResponse{ElectionID: electionID, Recorded: true}, nil
}

func mapSession(session entities.Session) httptransport.SessionResponse {
	managerIDs := session.ManagerIDs
	if managerIDs == nil {
		managerIDs = []int64{}
	}
	return httptransport.SessionResponse{
		SessionID:      session.SessionID,
		Title:          session.Title,
		MeetingLink:    session.MeetingLink,
		SpectatorToken: session.SpectatorToken,
		ManagerIDs:     managerIDs,
		CreatedAt:      session.CreatedAt,
	}
}

func mapElection(election entities.Election) httptransport.ElectionResponse {
	return httptransport.ElectionResponse{
		ElectionID:        election.ElectionID,
		SessionID:         election.SessionID,
		Title:             election.Title,
		Status:            string(election.Status),
		CanApply:          election.CanApply,
		MaxWinners:        election.MaxWinners,
		DisableAbstention: election.DisableAbstention,
		Publication:       string(election.Publication),
	}
}

func mapVoter(voter entities.Voter) httptransport.VoterResponse {
	voted := voter.VotedElections
	if voted == nil {
		voted = []int64{}
	}
	return httptransport.VoterResponse{
		VoterID:        voter.VoterID,
		SessionID:      voter.SessionID,
		Name:           voter.Name,
		Email:          voter.Email,
		Revoked:        voter.Revoked,
		VotedElections: voted,
	}
}

func mapApplication(app entities.Application) httptransport.ApplicationResponse {
	return httptransport.ApplicationResponse{
		ApplicationID: app.ApplicationID,
		ElectionID:    app.ElectionID,
		VoterID:       app.VoterID,
		DisplayName:   app.DisplayName,
		Email:         app.Email,
		Text:          app.Text,
		Position:      app.Position,
	}
}
