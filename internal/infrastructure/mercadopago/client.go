package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"betpix-backend/internal/domain/gateway"
)

// Client talks to the Mercado Pago payments REST API. The access token stays
// inside this package; errors returned to callers never carry it.
type Client struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
	Logger      *logrus.Logger
}

func NewClient(baseURL, accessToken string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		BaseURL:     baseURL,
		AccessToken: accessToken,
		HTTPClient:  &http.Client{Timeout: timeout},
		Logger:      logger,
	}
}

type paymentRequest struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	PaymentMethodID   string  `json:"payment_method_id"`
	Payer             payer   `json:"payer"`
}

type payer struct {
	Email string `json:"email"`
}

type paymentResponse struct {
	ID                 json.Number `json:"id"`
	Status             string      `json:"status"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

// CreatePixPayment creates a PIX-method charge and returns the gateway's
// payment id and QR payloads verbatim.
func (c *Client) CreatePixPayment(ctx context.Context, req gateway.PixChargeRequest) (*gateway.PixPayment, error) {
	body, err := json.Marshal(paymentRequest{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		PaymentMethodID:   "pix",
		Payer:             payer{Email: req.PayerEmail},
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.AccessToken)
	httpReq.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.Logger != nil {
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			c.Logger.WithFields(logrus.Fields{
				"status": resp.StatusCode,
				"body":   string(detail),
			}).Warn("payment gateway rejected charge")
		}
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var parsed paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("payment gateway response malformed: %w", err)
	}

	return &gateway.PixPayment{
		ID:           parsed.ID.String(),
		Status:       parsed.Status,
		QRCode:       parsed.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: parsed.PointOfInteraction.TransactionData.QRCodeBase64,
	}, nil
}

var _ gateway.PixGateway = (*Client)(nil)
