package entities

import (
	"slices"
	"time"
)

// Session is a voting meeting. It owns its elections and its voter roll and
// is administered by one or more managers.
type Session struct {
	SessionID      int64
	Title          string
	MeetingLink    string
	SpectatorToken string
	ManagerIDs     []int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (s Session) ManagedBy(managerID int64) bool {
	return managerID > 0 && slices.Contains(s.ManagerIDs, managerID)
}
