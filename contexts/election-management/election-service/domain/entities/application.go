package entities

import "time"

// Application is a candidate entry. Position records insertion order inside
// the election and is the stable ordering of every tally.
type Application struct {
	ApplicationID   int64
	ElectionID      int64
	VoterID         *int64
	DisplayName     string
	Email           string
	Text            string
	VotesAccept     int
	VotesReject     int
	VotesAbstention int
	Position        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ApplicationSummary struct {
	ApplicationID   int64
	DisplayName     string
	Email           string
	VotesAccept     int
	VotesReject     int
	VotesAbstention int
	Elected         bool
}
