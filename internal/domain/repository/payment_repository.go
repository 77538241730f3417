package repository

import (
	"context"

	"betpix-backend/internal/domain/entity"
)

// PaymentRepository journals gateway charge attempts.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Payment, error)
}
