package gateway

import "context"

// PixChargeRequest describes one charge to create on the external gateway.
type PixChargeRequest struct {
	Amount      float64
	Description string
	PayerEmail  string
}

// PixPayment is the gateway's view of a created charge. QR payloads are
// returned verbatim to the caller.
type PixPayment struct {
	ID           string
	Status       string
	QRCode       string
	QRCodeBase64 string
}

// PixGateway creates PIX charges on an external payment provider.
type PixGateway interface {
	CreatePixPayment(ctx context.Context, req PixChargeRequest) (*PixPayment, error)
}
