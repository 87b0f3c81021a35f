package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souqpay/souqpay/pkg/clients"
)

func TestClient_CreateCheckout(t *testing.T) {
	req := CheckoutRequest{
		Reference:   "01J8ZC3N9V3Y8K2T0A6QDRWFHM",
		UserID:      42,
		Amount:      decimal.RequireFromString("250.00"),
		Token:       "one-time-token",
		CallbackURL: "https://souq.example/api/payments/callback",
	}

	t.Run("Successfully opens checkout session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/checkout", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var got CheckoutRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, req.Reference, got.Reference)
			assert.True(t, req.Amount.Equal(got.Amount))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(Checkout{
				TransactionID: "gw-9001",
				PaymentURL:    "https://gateway.example/pay/gw-9001",
			})
		}))
		defer server.Close()

		client := New(server.URL, clients.NewHTTPClient())
		checkout, err := client.CreateCheckout(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "gw-9001", checkout.TransactionID)
		assert.Equal(t, "https://gateway.example/pay/gw-9001", checkout.PaymentURL)
	})

	t.Run("Non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := New(server.URL, clients.NewHTTPClient())
		checkout, err := client.CreateCheckout(context.Background(), req)
		assert.Error(t, err)
		assert.Nil(t, checkout)
	})

	t.Run("Missing transaction id is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(Checkout{PaymentURL: "https://gateway.example/pay/x"})
		}))
		defer server.Close()

		client := New(server.URL, clients.NewHTTPClient())
		checkout, err := client.CreateCheckout(context.Background(), req)
		assert.Error(t, err)
		assert.Nil(t, checkout)
	})
}
