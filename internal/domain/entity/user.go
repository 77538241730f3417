package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash and must never reach a caller-facing layer.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Balance      float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
