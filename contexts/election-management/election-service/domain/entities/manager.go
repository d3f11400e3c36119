package entities

import "time"

type Manager struct {
	ManagerID    int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
