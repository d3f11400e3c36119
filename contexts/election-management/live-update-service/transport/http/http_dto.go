package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type VoterTokenRequest struct {
	AccessCode string `json:"access_code"`
}

type ManagerTokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SpectatorTokenRequest struct {
	Token string `json:"token"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	UserType    string    `json:"user_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	VoterID     int64     `json:"voter_id,omitempty"`
	ManagerID   int64     `json:"manager_id,omitempty"`
	SessionID   int64     `json:"session_id,omitempty"`
}

type PrincipalResponse struct {
	UserType  string `json:"user_type"`
	VoterID   int64  `json:"voter_id,omitempty"`
	ManagerID int64  `json:"manager_id,omitempty"`
	SessionID int64  `json:"session_id,omitempty"`
}

type LiveStatsResponse struct {
	ActiveConnections int64 `json:"active_connections"`
}
