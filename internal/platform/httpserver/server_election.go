package httpserver

import (
	"errors"
	"net/http"

	electionentities "wahlfang/contexts/election-management/election-service/domain/entities"
	electionerrors "wahlfang/contexts/election-management/election-service/domain/errors"
	electionhttp "wahlfang/contexts/election-management/election-service/transport/http"
)

func (s *Server) registerManagementRoutes() {
	s.mux.HandleFunc("GET /api/management/v1/sessions", s.handleListSessions)
	s.mux.HandleFunc("POST /api/management/v1/sessions", s.handleCreateSession)
	s.mux.HandleFunc("GET /api/management/v1/sessions/{session_id}", s.handleGetSession)
	s.mux.HandleFunc("PATCH /api/management/v1/sessions/{session_id}", s.handleUpdateSession)
	s.mux.HandleFunc("DELETE /api/management/v1/sessions/{session_id}", s.handleDeleteSession)
	s.mux.HandleFunc("POST /api/management/v1/sessions/{session_id}/managers", s.handleAddSessionManager)
	s.mux.HandleFunc("GET /api/management/v1/sessions/{session_id}/elections", s.handleManagerListElections)
	s.mux.HandleFunc("POST /api/management/v1/sessions/{session_id}/elections", s.handleCreateElection)
	s.mux.HandleFunc("POST /api/management/v1/sessions/{session_id}/voters", s.handleAddVoter)

	s.mux.HandleFunc("PATCH /api/management/v1/elections/{election_id}", s.handleUpdateElection)
	s.mux.HandleFunc("DELETE /api/management/v1/elections/{election_id}", s.handleDeleteElection)
	s.mux.HandleFunc("POST /api/management/v1/elections/{election_id}/open", s.handleOpenElection)
	s.mux.HandleFunc("POST /api/management/v1/elections/{election_id}/close", s.handleCloseElection)
	s.mux.HandleFunc("POST /api/management/v1/elections/{election_id}/publish", s.handlePublication(electionentities.PublicationPublished))
	s.mux.HandleFunc("POST /api/management/v1/elections/{election_id}/unpublish", s.handlePublication(electionentities.PublicationUnpublished))
	s.mux.HandleFunc("GET /api/management/v1/elections/{election_id}/summary", s.handleManagerSummary)
	s.mux.HandleFunc("POST /api/management/v1/elections/{election_id}/applications", s.handleAddApplication)

	s.mux.HandleFunc("PATCH /api/management/v1/applications/{application_id}", s.handleUpdateApplication)
	s.mux.HandleFunc("DELETE /api/management/v1/applications/{application_id}", s.handleDeleteApplication)

	s.mux.HandleFunc("POST /api/management/v1/voters/{voter_id}/invalidate", s.handleInvalidateVoter)
	s.mux.HandleFunc("DELETE /api/management/v1/voters/{voter_id}", s.handleDeleteVoter)
}

func (s *Server) registerVoteRoutes() {
	s.mux.HandleFunc("GET /api/vote/v1/elections", s.handleVoteListElections)
	s.mux.HandleFunc("POST /api/vote/v1/elections/{election_id}/ballot", s.handleCastBallot)
	s.mux.HandleFunc("POST /api/vote/v1/elections/{election_id}/application", s.handleApply)
	s.mux.HandleFunc("GET /api/vote/v1/elections/{election_id}/summary", s.handleVoteSummary)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	resp, err := s.elections.Handler.ListSessionsHandler(r.Context(), managerID)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	var req electionhttp.CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.elections.Handler.CreateSessionHandler(r.Context(), managerID, req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	sessionID, ok := requirePathID(w, r, "session_id")
	if !ok {
		return
	}
	resp, err := s.elections.Handler.GetSessionHandler(r.Context(), managerID, sessionID)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	sessionID, ok := requirePathID(w, r, "session_id")
	if !ok {
		return
	}
	var req electionhttp.UpdateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.elections.Handler.UpdateSessionHandler(r.Context(), managerID, sessionID, req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	sessionID, ok := requirePathID(w, r, "session_id")
	if !ok {
		return
	}
	if err := s.elections.Handler.DeleteSessionHandler(r.Context(), managerID, sessionID); err != nil {
		writeElectionDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddSessionManager(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	sessionID, ok := requirePathID(w, r, "session_id")
	if !ok {
		return
	}
	var req electionhttp.AddSessionManagerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.elections.Handler.AddSessionManagerHandler(r.Context(), managerID, sessionID, req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleManagerListElections(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	sessionID, ok := requirePathID(w, r, "session_id")
	if !ok {
		return
	}
	resp, err := s.elections.Handler.ListElectionsHandler(r.Context(), electionentities.ManagerActor(managerID), sessionID)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateElection(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	sessionID, ok := requirePathID(w, r, "session_id")
	if !ok {
		return
	}
	var req electionhttp.CreateElectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.elections.Handler.CreateElectionHandler(r.Context(), managerID, sessionID, req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleAddVoter(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	sessionID, ok := requirePathID(w, r, "session_id")
	if !ok {
		return
	}
	var req electionhttp.AddVoterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.elections.Handler.AddVoterHandler(r.Context(), managerID, sessionID, req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateElection(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	electionID, ok := requirePathID(w, r, "election_id")
	if !ok {
		return
	}
	var req electionhttp.UpdateElectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.elections.Handler.UpdateElectionHandler(r.Context(), managerID, electionID, req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteElection(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	electionID, ok := requirePathID(w, r, "election_id")
	if !ok {
		return
	}
	if err := s.elections.Handler.DeleteElectionHandler(r.Context(), managerID, electionID); err != nil {
		writeElectionDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleOpenElection(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	electionID, ok := requirePathID(w, r, "election_id")
	if !ok {
		return
	}
	resp, err := s.elections.Handler.OpenElectionHandler(r.Context(), managerID, electionID)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCloseElection(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	electionID, ok := requirePathID(w, r, "election_id")
	if !ok {
		return
	}
	resp, err := s.elections.Handler.CloseElectionHandler(r.Context(), managerID, electionID)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePublication(publication electionentities.ResultPublication) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		managerID, ok := s.requireManager(w, r)
		if !ok {
			return
		}
		electionID, ok := requirePathID(w, r, "election_id")
		if !ok {
			return
		}
		resp, err := s.elections.Handler.SetPublicationHandler(r.Context(), managerID, electionID, publication)
		if err != nil {
			writeElectionDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) handleManagerSummary(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	electionID, ok := requirePathID(w, r, "election_id")
	if !ok {
		return
	}
	resp, err := s.elections.Handler.SummaryHandler(r.Context(), electionentities.ManagerActor(managerID), electionID)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddApplication(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	electionID, ok := requirePathID(w, r, "election_id")
	if !ok {
		return
	}
	var req electionhttp.ApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.elections.Handler.AddApplicationHandler(r.Context(), managerID, electionID, req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	applicationID, ok := requirePathID(w, r, "application_id")
	if !ok {
		return
	}
	var req electionhttp.UpdateApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.elections.Handler.UpdateApplicationHandler(r.Context(), managerID, applicationID, req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	applicationID, ok := requirePathID(w, r, "application_id")
	if !ok {
		return
	}
	if err := s.elections.Handler.DeleteApplicationHandler(r.Context(), managerID, applicationID); err != nil {
		writeElectionDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleInvalidateVoter(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	voterID, ok := requirePathID(w, r, "voter_id")
	if !ok {
		return
	}
	resp, err := s.elections.Handler.InvalidateVoterHandler(r.Context(), managerID, voterID)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteVoter(w http.ResponseWriter, r *http.Request) {
	managerID, ok := s.requireManager(w, r)
	if !ok {
		return
	}
	voterID, ok := requirePathID(w, r, "voter_id")
	if !ok {
		return
	}
	if err := s.elections.Handler.DeleteVoterHandler(r.Context(), managerID, voterID); err != nil {
		writeElectionDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleVoteListElections godoc
// @Summary List elections of the caller's session
// @Description Voters and spectators see the elections of the session their token belongs to.
// @Tags vote
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} electionhttp.ListElectionsResponse
// @Failure 401 {object} electionhttp.ErrorResponse
// @Failure 403 {object} electionhttp.ErrorResponse
// @Failure 500 {object} electionhttp.ErrorResponse
// @Router /api/vote/v1/elections [get]
func (s *Server) handleVoteListElections(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if principal.SessionID <= 0 {
		writeLiveError(w, http.StatusForbidden, "forbidden", "not allowed")
		return
	}
	resp, err := s.elections.Handler.ListElectionsHandler(r.Context(), actorFor(principal), principal.SessionID)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCastBallot(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.requireVoter(w, r)
	if !ok {
		return
	}
	electionID, ok := requirePathID(w, r, "election_id")
	if !ok {
		return
	}
	var req electionhttp.CastBallotRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.elections.Handler.CastBallotHandler(r.Context(), principal.VoterID, electionID, req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.requireVoter(w, r)
	if !ok {
		return
	}
	electionID, ok := requirePathID(w, r, "election_id")
	if !ok {
		return
	}
	var req electionhttp.ApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.elections.Handler.ApplyHandler(r.Context(), principal.VoterID, electionID, req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleVoteSummary(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	electionID, ok := requirePathID(w, r, "election_id")
	if !ok {
		return
	}
	resp, err := s.elections.Handler.SummaryHandler(r.Context(), actorFor(principal), electionID)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func requirePathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, ok := pathID(r, name)
	if !ok {
		writeElectionError(w, http.StatusBadRequest, "invalid_"+name, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeElectionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, electionerrors.ErrInvalidInput):
		writeElectionError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, electionerrors.ErrSessionNotFound),
		errors.Is(err, electionerrors.ErrElectionNotFound),
		errors.Is(err, electionerrors.ErrVoterNotFound),
		errors.Is(err, electionerrors.ErrApplicationNotFound),
		errors.Is(err, electionerrors.ErrManagerNotFound):
		writeElectionError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, electionerrors.ErrDuplicateManager),
		errors.Is(err, electionerrors.ErrApplicationExists),
		errors.Is(err, electionerrors.ErrAlreadyVoted):
		writeElectionError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, electionerrors.ErrInvalidTransition),
		errors.Is(err, electionerrors.ErrElectionNotOpen),
		errors.Is(err, electionerrors.ErrApplicationsClosed):
		writeElectionError(w, http.StatusConflict, "invalid_state", err.Error())
	case errors.Is(err, electionerrors.ErrAbstentionDisabled),
		errors.Is(err, electionerrors.ErrEmailDomainNotAllowed):
		writeElectionError(w, http.StatusUnprocessableEntity, "unprocessable", err.Error())
	case errors.Is(err, electionerrors.ErrVoterRevoked),
		errors.Is(err, electionerrors.ErrResultsNotPublished):
		writeElectionError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, electionerrors.ErrInvalidCredential):
		writeElectionError(w, http.StatusUnauthorized, "unauthorized", "authentication failed")
	default:
		writeElectionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeElectionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, electionhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
