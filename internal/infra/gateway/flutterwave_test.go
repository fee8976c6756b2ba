//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moveit-backend/internal/infra/gateway"
	"moveit-backend/internal/pkg/config"
	"moveit-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gateway.FlutterwaveClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return gateway.NewFlutterwaveClient(config.GatewayConfig{
		BaseURL:     server.URL,
		SecretKey:   "FLWSECK_TEST",
		RedirectURL: "http://localhost:8081/booking-confirmation",
		Currency:    "NGN",
		Timeout:     2 * time.Second,
	})
}

func TestInitializePayment(t *testing.T) {
	t.Run("returns the hosted payment link", func(t *testing.T) {
		var got map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/payments", r.URL.Path)
			assert.Equal(t, "Bearer FLWSECK_TEST", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			_, _ = w.Write([]byte(`{
				"status": "success",
				"message": "Hosted Link",
				"data": {"link": "https://checkout.flutterwave.com/v3/hosted/pay/abc123"}
			}`))
		})

		result, err := client.InitializePayment(context.Background(), gateway.InitializeRequest{
			TxRef:     "booking-1710000000000-123456",
			Amount:    250000,
			Customer:  gateway.Customer{Email: "test@example.com", Name: "Test Customer"},
			Title:     "MoveIt Car Rental",
			Narrative: "Toyota Corolla",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://checkout.flutterwave.com/v3/hosted/pay/abc123", result.PaymentLink)

		// Flutterwave expects the amount as a string and the currency from config
		assert.Equal(t, "booking-1710000000000-123456", got["tx_ref"])
		assert.Equal(t, "250000", got["amount"])
		assert.Equal(t, "NGN", got["currency"])
		assert.Equal(t, "http://localhost:8081/booking-confirmation", got["redirect_url"])
	})

	t.Run("rejected request surfaces the gateway message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "error", "message": "Invalid currency"}`))
		})

		result, err := client.InitializePayment(context.Background(), gateway.InitializeRequest{TxRef: "booking-x"})

		require.True(t, errs.Is(err, gateway.ErrGatewayRejected), "got %v", err)
		assert.Contains(t, err.Error(), "Invalid currency")
		assert.Nil(t, result)
	})

	t.Run("non-200 response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status": "error", "message": "Bad request"}`))
		})

		_, err := client.InitializePayment(context.Background(), gateway.InitializeRequest{TxRef: "booking-x"})
		require.True(t, errs.Is(err, gateway.ErrGatewayRejected), "got %v", err)
	})
}

func TestVerifyTransaction(t *testing.T) {
	t.Run("returns the gateway record", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/transactions/4837201/verify", r.URL.Path)

			_, _ = w.Write([]byte(`{
				"status": "success",
				"message": "Transaction fetched successfully",
				"data": {
					"id": 4837201,
					"tx_ref": "booking-1710000000000-123456",
					"amount": 250000,
					"currency": "NGN",
					"status": "successful"
				}
			}`))
		})

		verified, err := client.VerifyTransaction(context.Background(), "4837201")

		require.NoError(t, err)
		assert.Equal(t, "4837201", verified.TransactionID)
		assert.Equal(t, "booking-1710000000000-123456", verified.TxRef)
		assert.Equal(t, int64(250000), verified.Amount)
		assert.Equal(t, "NGN", verified.Currency)
		assert.Equal(t, "successful", verified.Status)
	})

	t.Run("fractional amount is rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"status": "success",
				"message": "Transaction fetched successfully",
				"data": {
					"id": 4837201,
					"tx_ref": "booking-1710000000000-123456",
					"amount": 250000.75,
					"currency": "NGN",
					"status": "successful"
				}
			}`))
		})

		verified, err := client.VerifyTransaction(context.Background(), "4837201")

		require.True(t, errs.Is(err, gateway.ErrGatewayRequest), "got %v", err)
		assert.Contains(t, err.Error(), "250000.75")
		assert.Nil(t, verified)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status": "error", "message": "No transaction was found for this id"}`))
		})

		verified, err := client.VerifyTransaction(context.Background(), "999")

		require.ErrorIs(t, err, gateway.ErrTransactionMissing)
		assert.Nil(t, verified)
	})

	t.Run("unreachable gateway", func(t *testing.T) {
		client := gateway.NewFlutterwaveClient(config.GatewayConfig{
			BaseURL: "http://127.0.0.1:1",
			Timeout: 200 * time.Millisecond,
		})

		_, err := client.VerifyTransaction(context.Background(), "4837201")
		require.True(t, errs.Is(err, gateway.ErrGatewayRequest), "got %v", err)
	})
}
