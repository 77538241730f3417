package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"betpix-backend/internal/domain/entity"
	"betpix-backend/internal/domain/gateway"
	"betpix-backend/internal/domain/repository"
)

var (
	ErrAmountBelowMinimum = errors.New("amount below minimum")
	ErrGateway            = errors.New("payment gateway error")
)

// DepositService initiates PIX charges on the external gateway. It is a
// pass-through: no balance is credited here, reconciliation happens elsewhere.
type DepositService struct {
	Gateway  gateway.PixGateway
	Payments repository.PaymentRepository
	Logger   *logrus.Logger

	MinAmount         float64
	Description       string
	DefaultPayerEmail string
	Timeout           time.Duration
}

func NewDepositService(gw gateway.PixGateway, payments repository.PaymentRepository, logger *logrus.Logger, minAmount float64, description, defaultPayerEmail string, timeout time.Duration) *DepositService {
	return &DepositService{
		Gateway:           gw,
		Payments:          payments,
		Logger:            logger,
		MinAmount:         minAmount,
		Description:       description,
		DefaultPayerEmail: defaultPayerEmail,
		Timeout:           timeout,
	}
}

// DepositResult is the caller-facing projection of a created charge.
type DepositResult struct {
	PaymentID    string
	QRCode       string
	QRCodeBase64 string
}

// CreateDeposit asks the gateway for a PIX charge and journals the attempt.
// userID is optional; when present the journal row references the user.
func (s *DepositService) CreateDeposit(ctx context.Context, amount float64, payerEmail, userID string) (*DepositResult, error) {
	if amount < s.MinAmount {
		return nil, fmt.Errorf("%w: minimum is %g", ErrAmountBelowMinimum, s.MinAmount)
	}
	if payerEmail == "" {
		payerEmail = s.DefaultPayerEmail
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	payment, err := s.Gateway.CreatePixPayment(ctx, gateway.PixChargeRequest{
		Amount:      amount,
		Description: s.Description,
		PayerEmail:  payerEmail,
	})
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("amount", amount).Error("pix charge failed")
		}
		return nil, ErrGateway
	}

	s.journal(ctx, payment, amount, userID)

	return &DepositResult{
		PaymentID:    payment.ID,
		QRCode:       payment.QRCode,
		QRCodeBase64: payment.QRCodeBase64,
	}, nil
}

// journal records the attempt best-effort; a failed insert must not fail a
// charge the gateway already accepted.
func (s *DepositService) journal(ctx context.Context, payment *gateway.PixPayment, amount float64, userID string) {
	if s.Payments == nil {
		return
	}
	p := &entity.Payment{
		GatewayPaymentID: payment.ID,
		Amount:           amount,
		Status:           payment.Status,
	}
	if userID != "" {
		p.UserID = &userID
	}
	if err := s.Payments.Create(ctx, p); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("gateway_payment_id", payment.ID).Warn("payment journal insert failed")
	}
}
