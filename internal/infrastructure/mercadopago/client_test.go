package mercadopago

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betpix-backend/internal/domain/gateway"
)

func TestCreatePixPayment_Success(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotAuth, gotIdem string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotIdem = r.Header.Get("X-Idempotency-Key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": 1316782634,
			"status": "pending",
			"point_of_interaction": {
				"transaction_data": {
					"qr_code": "00020126580014br.gov.bcb.pix",
					"qr_code_base64": "iVBORw0KGgo="
				}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TEST-TOKEN", 2*time.Second, nil)
	p, err := c.CreatePixPayment(context.Background(), gateway.PixChargeRequest{
		Amount:      50,
		Description: "Account deposit",
		PayerEmail:  "payer@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "1316782634", p.ID)
	assert.Equal(t, "pending", p.Status)
	assert.Equal(t, "00020126580014br.gov.bcb.pix", p.QRCode)
	assert.Equal(t, "iVBORw0KGgo=", p.QRCodeBase64)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/payments", gotPath)
	assert.Equal(t, "Bearer TEST-TOKEN", gotAuth)
	assert.NotEmpty(t, gotIdem)
	assert.Equal(t, float64(50), gotBody["transaction_amount"])
	assert.Equal(t, "pix", gotBody["payment_method_id"])
	assert.Equal(t, "Account deposit", gotBody["description"])
	assert.Equal(t, map[string]any{"email": "payer@example.com"}, gotBody["payer"])
}

func TestCreatePixPayment_GatewayRejects(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid payer"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TEST-TOKEN", 2*time.Second, nil)
	_, err := c.CreatePixPayment(context.Background(), gateway.PixChargeRequest{Amount: 50})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "TEST-TOKEN")
}

func TestCreatePixPayment_Unreachable(t *testing.T) {
	t.Parallel()

	c := NewClient("http://127.0.0.1:1", "TEST-TOKEN", 200*time.Millisecond, nil)
	_, err := c.CreatePixPayment(context.Background(), gateway.PixChargeRequest{Amount: 50})
	require.Error(t, err)
}

func TestCreatePixPayment_MalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TEST-TOKEN", 2*time.Second, nil)
	_, err := c.CreatePixPayment(context.Background(), gateway.PixChargeRequest{Amount: 50})
	require.Error(t, err)
}
