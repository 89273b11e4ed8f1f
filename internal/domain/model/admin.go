package model

import "time"

// Admin represents an operator account allowed to mutate order statuses.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
