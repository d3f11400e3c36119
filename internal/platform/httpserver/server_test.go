package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	electionservice "wahlfang/contexts/election-management/election-service"
	"wahlfang/contexts/election-management/election-service/adapters/crypto"
	"wahlfang/contexts/election-management/election-service/application/commands"
	"wahlfang/contexts/election-management/election-service/domain/services"
	electionhttp "wahlfang/contexts/election-management/election-service/transport/http"
	liveupdateservice "wahlfang/contexts/election-management/live-update-service"
	jwtadapter "wahlfang/contexts/election-management/live-update-service/adapters/jwt"
	livehttp "wahlfang/contexts/election-management/live-update-service/transport/http"
	livev1 "wahlfang/contracts/gen/live/v1"
	"wahlfang/internal/app/bridges"
	"wahlfang/internal/platform/messaging"
)

const (
	testManagerLogin    = "alice"
	testManagerPassword = "correct-horse"
)

type testServer struct {
	*Server
	bus       *messaging.MemoryBus
	managerID int64
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := messaging.NewMemoryBus(logger)
	listener := liveupdateservice.NewListener(bus, true, time.Second, logger)

	elections := electionservice.NewInMemoryModule(listener, services.WinnerPolicyInsertionOrder, logger)
	elections.Managers.Hasher = crypto.BcryptHasher{Cost: 4}
	elections.Credentials.Hasher = crypto.BcryptHasher{Cost: 4}
	created, err := elections.Managers.CreateManager(context.Background(), commands.CreateManagerCommand{
		Username: testManagerLogin,
		Email:    "alice@example.org",
		Password: testManagerPassword,
	})
	if err != nil {
		t.Fatalf("create manager: %v", err)
	}

	signer, err := jwtadapter.NewSigner([]byte("test-secret-0123456789"), "", nil)
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	live := liveupdateservice.NewModule(liveupdateservice.Dependencies{
		Credentials: bridges.CredentialStore{Credentials: elections.Credentials},
		Bus:         bus,
		Signer:      signer,
		Listener:    listener,
		Logger:      logger,
	})

	return testServer{
		Server:    New(elections, live, logger, Options{}),
		bus:       bus,
		managerID: created.Manager.ManagerID,
	}
}

func (s testServer) do(t *testing.T, method string, path string, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v body=%s", err, rr.Body.String())
	}
	return out
}

func (s testServer) managerToken(t *testing.T) string {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/auth/v1/manager/token", "", livehttp.ManagerTokenRequest{
		Username: testManagerLogin,
		Password: testManagerPassword,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	return decodeBody[livehttp.TokenResponse](t, rr).AccessToken
}

func (s testServer) voterToken(t *testing.T, accessCode string) string {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/auth/v1/voter/token", "", livehttp.VoterTokenRequest{AccessCode: accessCode})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	return decodeBody[livehttp.TokenResponse](t, rr).AccessToken
}

func (s testServer) createSession(t *testing.T, managerToken string) electionhttp.SessionResponse {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/management/v1/sessions", managerToken, electionhttp.CreateSessionRequest{Title: "Assembly"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	return decodeBody[electionhttp.SessionResponse](t, rr)
}

func (s testServer) addVoter(t *testing.T, managerToken string, sessionID int64) electionhttp.IssuedVoterResponse {
	t.Helper()
	path := "/api/management/v1/sessions/" + strconv.FormatInt(sessionID, 10) + "/voters"
	rr := s.do(t, http.MethodPost, path, managerToken, electionhttp.AddVoterRequest{Name: "Voter"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	return decodeBody[electionhttp.IssuedVoterResponse](t, rr)
}

func TestManagementRoutesRequireAuthorizationHeader(t *testing.T) {
	server := newTestServer(t)
	rr := server.do(t, http.MethodGet, "/api/management/v1/sessions", "", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestManagementRoutesRejectForgedToken(t *testing.T) {
	server := newTestServer(t)
	rr := server.do(t, http.MethodGet, "/api/management/v1/sessions", "not-a-jwt", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	resp := decodeBody[livehttp.ErrorResponse](t, rr)
	if resp.Message != "authentication failed" {
		t.Fatalf("expected generic message, got %q", resp.Message)
	}
}

func TestManagementRoutesRejectVoterToken(t *testing.T) {
	server := newTestServer(t)
	manager := server.managerToken(t)
	session := server.createSession(t, manager)
	voter := server.voterToken(t, server.addVoter(t, manager, session.SessionID).AccessCode)

	rr := server.do(t, http.MethodGet, "/api/management/v1/sessions", voter, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestManagerCannotSeeForeignSession(t *testing.T) {
	server := newTestServer(t)
	manager := server.managerToken(t)
	session := server.createSession(t, manager)

	_, err := server.elections.Managers.CreateManager(context.Background(), commands.CreateManagerCommand{
		Username: "bob",
		Email:    "bob@example.org",
		Password: "another-password",
	})
	if err != nil {
		t.Fatalf("create manager: %v", err)
	}
	rr := server.do(t, http.MethodPost, "/api/auth/v1/manager/token", "", livehttp.ManagerTokenRequest{
		Username: "bob",
		Password: "another-password",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	other := decodeBody[livehttp.TokenResponse](t, rr).AccessToken

	rr = server.do(t, http.MethodGet, "/api/management/v1/sessions/"+strconv.FormatInt(session.SessionID, 10), other, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVoterTokenRejectsUnknownAccessCode(t *testing.T) {
	server := newTestServer(t)
	rr := server.do(t, http.MethodPost, "/api/auth/v1/voter/token", "", livehttp.VoterTokenRequest{AccessCode: "nope"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVoterTokenRejectsRevokedVoter(t *testing.T) {
	server := newTestServer(t)
	manager := server.managerToken(t)
	session := server.createSession(t, manager)
	issued := server.addVoter(t, manager, session.SessionID)
	voter := server.voterToken(t, issued.AccessCode)

	path := "/api/management/v1/voters/" + strconv.FormatInt(issued.Voter.VoterID, 10) + "/invalidate"
	if rr := server.do(t, http.MethodPost, path, manager, nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr := server.do(t, http.MethodPost, "/api/auth/v1/voter/token", "", livehttp.VoterTokenRequest{AccessCode: issued.AccessCode})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked access code, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = server.do(t, http.MethodGet, "/api/auth/v1/me", voter, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for token of revoked voter, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSpectatorTokenStopsWorkingAfterSessionDelete(t *testing.T) {
	server := newTestServer(t)
	manager := server.managerToken(t)
	session := server.createSession(t, manager)

	rr := server.do(t, http.MethodPost, "/api/auth/v1/spectator/token", "", livehttp.SpectatorTokenRequest{Token: session.SpectatorToken})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	spectator := decodeBody[livehttp.TokenResponse](t, rr).AccessToken
	if rr := server.do(t, http.MethodGet, "/api/auth/v1/me", spectator, nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	path := "/api/management/v1/sessions/" + strconv.FormatInt(session.SessionID, 10)
	if rr := server.do(t, http.MethodDelete, path, manager, nil); rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = server.do(t, http.MethodGet, "/api/auth/v1/me", spectator, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for spectator of deleted session, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestWhoAmIReportsVoterPrincipal(t *testing.T) {
	server := newTestServer(t)
	manager := server.managerToken(t)
	session := server.createSession(t, manager)
	issued := server.addVoter(t, manager, session.SessionID)
	voter := server.voterToken(t, issued.AccessCode)

	rr := server.do(t, http.MethodGet, "/api/auth/v1/me", voter, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	resp := decodeBody[livehttp.PrincipalResponse](t, rr)
	if resp.UserType != "voter" || resp.VoterID != issued.Voter.VoterID || resp.SessionID != session.SessionID {
		t.Fatalf("unexpected principal %+v", resp)
	}
}

func TestVoteSummaryHiddenUntilPublished(t *testing.T) {
	server := newTestServer(t)
	manager := server.managerToken(t)
	session := server.createSession(t, manager)
	voter := server.voterToken(t, server.addVoter(t, manager, session.SessionID).AccessCode)

	rr := server.do(t, http.MethodPost, "/api/management/v1/sessions/"+strconv.FormatInt(session.SessionID, 10)+"/elections", manager,
		electionhttp.CreateElectionRequest{Title: "Board"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	election := decodeBody[electionhttp.ElectionResponse](t, rr)
	electionPath := "/api/management/v1/elections/" + strconv.FormatInt(election.ElectionID, 10)

	rr = server.do(t, http.MethodPost, electionPath+"/applications", manager, electionhttp.ApplicationRequest{DisplayName: "Ada"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	summaryPath := "/api/vote/v1/elections/" + strconv.FormatInt(election.ElectionID, 10) + "/summary"
	rr = server.do(t, http.MethodGet, summaryPath, voter, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 before publication, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = server.do(t, http.MethodGet, electionPath+"/summary", manager, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected manager to see summary, got %d body=%s", rr.Code, rr.Body.String())
	}

	if rr := server.do(t, http.MethodPost, electionPath+"/publish", manager, nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = server.do(t, http.MethodGet, summaryPath, voter, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 after publication, got %d body=%s", rr.Code, rr.Body.String())
	}
	summary := decodeBody[electionhttp.SummaryResponse](t, rr)
	if len(summary.Items) != 1 {
		t.Fatalf("expected one summary item, got %+v", summary)
	}
}

func TestRejectsMalformedPathID(t *testing.T) {
	server := newTestServer(t)
	manager := server.managerToken(t)
	rr := server.do(t, http.MethodPost, "/api/management/v1/elections/abc/open", manager, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestHealthzReportsActiveConnections(t *testing.T) {
	server := newTestServer(t)
	rr := server.do(t, http.MethodGet, "/healthz", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	body := decodeBody[map[string]any](t, rr)
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body %v", body)
	}
}

func dialLive(t *testing.T, ts *httptest.Server, path string, header http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + path
	ws, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("dial %s: %v", path, err)
	}
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}
	_ = ws.SetReadDeadline(time.Now().Add(5 * time.Second))
	return ws
}

func expectClose(t *testing.T, ws *websocket.Conn, code int) {
	t.Helper()
	_, _, err := ws.ReadMessage()
	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) {
		t.Fatalf("expected close frame, got %v", err)
	}
	if closeErr.Code != code || closeErr.Text != "authentication failed" {
		t.Fatalf("expected close %d authentication failed, got %d %q", code, closeErr.Code, closeErr.Text)
	}
}

func waitForSubscriber(t *testing.T, bus *messaging.MemoryBus, group string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for bus.NumSinks(group) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("no subscriber joined %s", group)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestLiveVoteRejectsUnknownAccessCode(t *testing.T) {
	server := newTestServer(t)
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	ws := dialLive(t, ts, "/ws/vote?access_code=nope", nil)
	defer ws.Close()
	expectClose(t, ws, 4401)
}

func TestLiveManagementRejectsVoterToken(t *testing.T) {
	server := newTestServer(t)
	manager := server.managerToken(t)
	session := server.createSession(t, manager)
	voter := server.voterToken(t, server.addVoter(t, manager, session.SessionID).AccessCode)

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	ws := dialLive(t, ts, "/ws/management?token="+voter, nil)
	defer ws.Close()
	expectClose(t, ws, 4401)
}

func TestLiveVoterReceivesSessionUpdates(t *testing.T) {
	server := newTestServer(t)
	manager := server.managerToken(t)
	session := server.createSession(t, manager)
	issued := server.addVoter(t, manager, session.SessionID)

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	ws := dialLive(t, ts, "/ws/vote?access_code="+issued.AccessCode, nil)
	defer ws.Close()
	waitForSubscriber(t, server.bus, livev1.SessionGroup(session.SessionID))

	server.addVoter(t, manager, session.SessionID)

	var msg map[string]any
	if err := ws.ReadJSON(&msg); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if msg["type"] != "update" || msg["table"] != "voter" {
		t.Fatalf("unexpected message %v", msg)
	}
	if _, ok := msg["session_id"]; ok {
		t.Fatalf("voter message must not carry session_id: %v", msg)
	}
}

func TestLiveManagerReceivesSessionID(t *testing.T) {
	server := newTestServer(t)
	manager := server.managerToken(t)

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	header := http.Header{}
	header.Set("Authorization", "Bearer "+manager)
	ws := dialLive(t, ts, "/ws/management", header)
	defer ws.Close()
	waitForSubscriber(t, server.bus, livev1.ManagerGroup(server.managerID))

	session := server.createSession(t, manager)

	var msg struct {
		Type      string `json:"type"`
		Table     string `json:"table"`
		SessionID int64  `json:"session_id"`
	}
	if err := ws.ReadJSON(&msg); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if msg.Type != "update" || msg.Table != "session" || msg.SessionID != session.SessionID {
		t.Fatalf("unexpected message %+v", msg)
	}
}
