package entity

import (
	"time"
)

// Payment journals one gateway charge attempt. Deposits are initiate-only:
// a row here records the attempt, it does not credit any balance.
type Payment struct {
	ID               string
	UserID           *string // nil when the caller did not identify themselves
	GatewayPaymentID string
	Amount           float64
	Status           string
	CreatedAt        time.Time
}
