package midtrans

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(Config{
		ServerKey:  "SB-Mid-server-key",
		SnapURL:    srv.URL,
		APIURL:     srv.URL,
		SessionTTL: 2 * time.Hour,
		Timeout:    time.Second,
	}, nil)
	c.now = func() time.Time { return fixedNow }
	return c
}

func TestNewClient_EnvironmentURLs(t *testing.T) {
	sandbox := NewClient(Config{}, nil)
	assert.Equal(t, SandboxSnapURL, sandbox.snapURL)
	assert.Equal(t, SandboxAPIURL, sandbox.apiURL)
	assert.Equal(t, DefaultSessionTTL, sandbox.sessionTTL)

	production := NewClient(Config{IsProduction: true}, nil)
	assert.Equal(t, ProductionSnapURL, production.snapURL)
	assert.Equal(t, ProductionAPIURL, production.apiURL)
}

func TestClient_CreateSession(t *testing.T) {
	var got snapRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/snap/v1/transactions", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "SB-Mid-server-key", user)
		assert.Empty(t, pass)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"snap-token","redirect_url":"https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token"}`))
	})

	session, err := client.CreateSession(t.Context(), ports.PaymentRequest{
		OrderRef:    "ORD-20250301-ABC123",
		GrossAmount: 27000,
		Customer:    ports.PaymentCustomer{Name: "Sari", Phone: "0812"},
		Lines: []ports.PaymentLine{
			{ID: "laundry-service", Name: "Laundry Service - Wangi", Price: 20000, Quantity: 1},
			{ID: "delivery-fee", Name: "Biaya Delivery", Price: 10000, Quantity: 1},
			{ID: "discount", Name: "Diskon", Price: -3000, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "snap-token", session.Token)
	assert.Contains(t, session.RedirectURL, "snap-token")
	assert.Equal(t, fixedNow.Add(2*time.Hour), session.ExpiresAt)

	assert.Equal(t, "ORD-20250301-ABC123", got.TransactionDetails.OrderID)
	assert.Equal(t, int64(27000), got.TransactionDetails.GrossAmount)
	assert.Equal(t, "Sari", got.CustomerDetails.FirstName)
	require.Len(t, got.ItemDetails, 3)
	assert.Equal(t, int64(-3000), got.ItemDetails[2].Price)
	assert.Equal(t, expiry{Unit: "minutes", Duration: 120}, got.Expiry)
}

func TestClient_CreateSession_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_messages":["transaction_details.gross_amount is not equal to the sum of item_details"]}`))
	})

	_, err := client.CreateSession(t.Context(), ports.PaymentRequest{OrderRef: "ORD-1", GrossAmount: 1})

	var upstream *errs.UpstreamGatewayError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadRequest, upstream.StatusCode)
	assert.Contains(t, upstream.Message, "gross_amount")
}

func TestClient_GetStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/ORD-20250301-ABC123/status", r.URL.Path)
		_, _ = w.Write([]byte(`{"status_code":"200","order_id":"ORD-20250301-ABC123","transaction_status":"settlement",
			"fraud_status":"accept","payment_type":"qris","gross_amount":"27000.00"}`))
	})

	state, err := client.GetStatus(t.Context(), "ORD-20250301-ABC123")

	require.NoError(t, err)
	assert.Equal(t, "settlement", state.TransactionStatus)
	assert.Equal(t, "accept", state.FraudStatus)
	assert.Equal(t, "qris", state.PaymentType)
}

func TestClient_GetStatus_BodyStatusCodeIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status_code":"404","status_message":"Transaction doesn't exist."}`))
	})

	_, err := client.GetStatus(t.Context(), "ORD-unknown")

	var upstream *errs.UpstreamGatewayError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.Equal(t, "Transaction doesn't exist.", upstream.Message)
}

func TestClient_VerifyNotification(t *testing.T) {
	client := NewClient(Config{ServerKey: "server-key"}, nil)
	n := ports.PaymentNotification{OrderRef: "ORD-1", StatusCode: "200", GrossAmount: "27000.00"}

	n.SignatureKey = Signature("ORD-1", "200", "27000.00", "server-key")
	assert.True(t, client.VerifyNotification(n))

	n.GrossAmount = "1.00"
	assert.False(t, client.VerifyNotification(n))
}

func TestSignature(t *testing.T) {
	sig := Signature("a", "b", "c", "d")

	assert.Len(t, sig, 128)
	assert.Equal(t, sig, Signature("a", "b", "c", "d"))
	assert.NotEqual(t, sig, Signature("a", "b", "c", "e"))
}
