package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/souqpay/souqpay/pkg/clients"
)

// Client talks to the external payment gateway's checkout API. Card
// processing itself lives entirely on the gateway side; we only open a
// session and later receive its callback.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(gatewayURL string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    gatewayURL,
		client: client,
	}
}

type CheckoutRequest struct {
	Reference   string          `json:"reference"`
	UserID      int64           `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Token       string          `json:"token"`
	CallbackURL string          `json:"callback_url"`
}

type Checkout struct {
	TransactionID string `json:"transaction_id"`
	PaymentURL    string `json:"payment_url"`
}

func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checkout request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	statusCode, respBody, err := c.client.Post(c.url+"/api/checkout", headers, body)
	if err != nil {
		return nil, fmt.Errorf("gateway checkout request failed: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return nil, fmt.Errorf("gateway checkout returned status %d", statusCode)
	}

	var checkout Checkout
	if err := json.Unmarshal(respBody, &checkout); err != nil {
		return nil, fmt.Errorf("failed to parse checkout response: %w", err)
	}
	if checkout.TransactionID == "" {
		return nil, fmt.Errorf("gateway checkout returned no transaction id")
	}
	return &checkout, nil
}
