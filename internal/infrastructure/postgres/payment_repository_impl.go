package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"betpix-backend/internal/domain/entity"
	"betpix-backend/internal/domain/repository"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO payments (user_id, gateway_payment_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.UserID, p.GatewayPaymentID, p.Amount, p.Status)

	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, gateway_payment_id, amount, status, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Payment
	for rows.Next() {
		p := &entity.Payment{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.GatewayPaymentID, &p.Amount,
			&p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)
