package repository

import (
	"context"

	"betpix-backend/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create inserts a new user with a zero balance and fills in the
	// generated id and timestamps. Returns ErrDuplicateEmail when the email
	// is already registered.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
