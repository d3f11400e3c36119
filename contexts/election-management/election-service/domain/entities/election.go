package entities

import "time"

type ElectionStatus string

const (
	ElectionStatusPending ElectionStatus = "pending"
	ElectionStatusOpen    ElectionStatus = "open"
	ElectionStatusClosed  ElectionStatus = "closed"
)

// ResultPublication gates who may read an election's tally. Only an owning
// manager changes it, in either direction.
type ResultPublication string

const (
	PublicationUnpublished ResultPublication = "unpublished"
	PublicationPublished   ResultPublication = "published"
)

func (p ResultPublication) Valid() bool {
	return p == PublicationUnpublished || p == PublicationPublished
}

type Election struct {
	ElectionID        int64
	SessionID         int64
	Title             string
	Status            ElectionStatus
	CanApply          bool
	MaxWinners        *int
	DisableAbstention bool
	Publication       ResultPublication
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (e Election) IsOpen() bool {
	return e.Status == ElectionStatusOpen
}

func (e Election) IsPublished() bool {
	return e.Publication == PublicationPublished
}
