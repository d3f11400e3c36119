package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateSessionRequest struct {
	Title       string `json:"title"`
	MeetingLink string `json:"meeting_link,omitempty"`
}

type UpdateSessionRequest struct {
	Title       *string `json:"title,omitempty"`
	MeetingLink *string `json:"meeting_link,omitempty"`
}

type AddSessionManagerRequest struct {
	Login string `json:"login"`
}

type SessionResponse struct {
	SessionID      int64     `json:"session_id"`
	Title          string    `json:"title"`
	MeetingLink    string    `json:"meeting_link,omitempty"`
	SpectatorToken string    `json:"spectator_token"`
	ManagerIDs     []int64   `json:"manager_ids"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListSessionsResponse struct {
	Items []SessionResponse `json:"items"`
}

type SessionDetailResponse struct {
	Session   SessionResponse    `json:"session"`
	Elections []ElectionResponse `json:"elections"`
	Voters    []VoterResponse    `json:"voters"`
}

type CreateElectionRequest struct {
	Title             string `json:"title"`
	MaxWinners        *int   `json:"max_winners,omitempty"`
	CanApply          bool   `json:"can_apply"`
	DisableAbstention bool   `json:"disable_abstention"`
}

type UpdateElectionRequest struct {
	Title             *string `json:"title,omitempty"`
	MaxWinners        *int    `json:"max_winners,omitempty"`
	ClearMaxWinners   bool    `json:"clear_max_winners,omitempty"`
	CanApply          *bool   `json:"can_apply,omitempty"`
	DisableAbstention *bool   `json:"disable_abstention,omitempty"`
}

type ElectionResponse struct {
	ElectionID        int64  `json:"election_id"`
	SessionID         int64  `json:"session_id"`
	Title             string `json:"title"`
	Status            string `json:"status"`
	CanApply          bool   `json:"can_apply"`
	MaxWinners        *int   `json:"max_winners"`
	DisableAbstention bool   `json:"disable_abstention"`
	Publication       string `json:"result_publication"`
}

type ListElectionsResponse struct {
	Items []ElectionResponse `json:"items"`
}

type AddVoterRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type VoterResponse struct {
	VoterID        int64   `json:"voter_id"`
	SessionID      int64   `json:"session_id"`
	Name           string  `json:"name,omitempty"`
	Email          string  `json:"email,omitempty"`
	Revoked        bool    `json:"revoked"`
	VotedElections []int64 `json:"voted_elections"`
}

// IssuedVoterResponse is the only response that ever carries an access code.
type IssuedVoterResponse struct {
	Voter      VoterResponse `json:"voter"`
	AccessCode string        `json:"access_code"`
}

type ApplicationRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	Text        string `json:"text,omitempty"`
}

type UpdateApplicationRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Text        *string `json:"text,omitempty"`
}

type ApplicationResponse struct {
	ApplicationID int64  `json:"application_id"`
	ElectionID    int64  `json:"election_id"`
	VoterID       *int64 `json:"voter_id,omitempty"`
	DisplayName   string `json:"display_name"`
	Email         string `json:"email,omitempty"`
	Text          string `json:"text,omitempty"`
	Position      int    `json:"position"`
}

type BallotChoiceRequest struct {
	ApplicationID int64  `json:"application_id"`
	Choice        string `json:"choice"`
}

type CastBallotRequest struct {
	Choices []BallotChoiceRequest `json:"choices"`
}

type CastBallotResponse struct {
	ElectionID int64 `json:"election_id"`
	Recorded   bool  `json:"recorded"`
}

type SummaryItem struct {
	ApplicationID   int64  `json:"application_id"`
	DisplayName     string `json:"display_name"`
	Email           string `json:"email,omitempty"`
	VotesAccept     int    `json:"votes_accept"`
	VotesReject     int    `json:"votes_reject"`
	VotesAbstention int    `json:"votes_abstention"`
	Elected         bool   `json:"elected"`
}

type SummaryResponse struct {
	ElectionID   int64         `json:"election_id"`
	WinnerPolicy string        `json:"winner_policy"`
	Items        []SummaryItem `json:"items"`
}
