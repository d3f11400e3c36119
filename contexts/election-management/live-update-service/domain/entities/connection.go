package entities

import "time"

// Audience is the endpoint a connection was opened on.
type Audience string

const (
	AudienceVoter   Audience = "voter"
	AudienceManager Audience = "manager"
)

type ConnState string

const (
	ConnConnecting ConnState = "connecting"
	ConnOpen       ConnState = "open"
	ConnClosed     ConnState = "closed"
)

// Close codes sent to clients. Authentication and audience failures share
// one code and reason.
const (
	CloseNormal         = 1000
	CloseGoingAway      = 1001
	CloseInternalError  = 1011
	CloseAuthFailed     = 4401
	CloseAuthFailedText = "authentication failed"
)

// OutboundMessage is pushed to a client for every notification of its
// group. SessionID is only filled for manager connections.
type OutboundMessage struct {
	Type      string `json:"type"`
	Table     string `json:"table"`
	SessionID int64  `json:"session_id,omitempty"`
}

type ConnectionInfo struct {
	ConnectionID string
	Principal    Principal
	Audience     Audience
	GroupKey     string
	OpenedAt     time.Time
}
