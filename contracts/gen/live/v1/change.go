package v1

import (
	"strconv"
	"time"
)

// EntityType names a persisted entity whose writes are observed by the live-update layer.
type EntityType string

const (
	EntitySession     EntityType = "session"
	EntityElection    EntityType = "election"
	EntityVoter       EntityType = "voter"
	EntityApplication EntityType = "application"
)

// ChangeKind is the lifecycle step a committed write performed.
type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// Table is the coarse tag clients use to decide what to re-fetch.
type Table string

const (
	TableSession  Table = "session"
	TableElection Table = "election"
	TableVoter    Table = "voter"
)

// ChangeEvent is the commit hook payload emitted by the persistence layer
// after a durable write. SessionID and ElectionID carry the ownership chain
// so consumers never have to query the store again.
type ChangeEvent struct {
	Entity     EntityType `json:"entity"`
	EntityID   int64      `json:"entity_id"`
	Change     ChangeKind `json:"change"`
	SessionID  int64      `json:"session_id"`
	ElectionID int64      `json:"election_id,omitempty"`
	ManagerIDs []int64    `json:"manager_ids,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// TableFor maps an entity onto the tag sent to clients. Application
// changes are reported as election changes.
func TableFor(entity EntityType) (Table, bool) {
	switch entity {
	case EntitySession:
		return TableSession, true
	case EntityElection, EntityApplication:
		return TableElection, true
	case EntityVoter:
		return TableVoter, true
	default:
		return "", false
	}
}

// SessionGroup returns the group shared by voters and spectators of a session.
func SessionGroup(sessionID int64) string {
	return "session:" + strconv.FormatInt(sessionID, 10)
}

// ManagerGroup returns the private group of one election manager.
func ManagerGroup(managerID int64) string {
	return "manager:" + strconv.FormatInt(managerID, 10)
}
