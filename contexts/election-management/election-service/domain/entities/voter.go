package entities

import (
	"slices"
	"time"
)

// Voter belongs to exactly one session. Only the hash of the access code is
// kept; the raw code is handed out once when the voter is created.
type Voter struct {
	VoterID        int64
	SessionID      int64
	Name           string
	Email          string
	TokenHash      string
	Revoked        bool
	VotedElections []int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (v Voter) HasVoted(electionID int64) bool {
	return slices.Contains(v.VotedElections, electionID)
}

// IssuedVoter carries the raw access code next to the stored voter.
type IssuedVoter struct {
	Voter      Voter
	AccessCode string
}
