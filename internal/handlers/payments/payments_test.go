package payments

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/service/webhook"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, "https://souq.example")
	defer ctrl.Finish()
	return handler, service
}

func TestCallbackGET(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name             string
		query            string
		prepareMock      func()
		expectedCode     int
		expectedLocation string
	}{
		{
			name:  "Successful payment redirects to success page",
			query: "status=success&transaction_id=gw-1&token=tok",
			prepareMock: func() {
				service.EXPECT().
					ProcessCallback(gomock.Any(), "success", "gw-1", "tok").
					Return(&webhook.CallbackResult{Status: domain.StatusCompleted, TransactionID: "gw-1"}, nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "https://souq.example/payment-success?transaction_id=gw-1",
		},
		{
			name:  "Declined payment redirects to failure page",
			query: "status=declined&transaction_id=gw-2&token=tok",
			prepareMock: func() {
				service.EXPECT().
					ProcessCallback(gomock.Any(), "declined", "gw-2", "tok").
					Return(&webhook.CallbackResult{Status: domain.StatusFailed, TransactionID: "gw-2"}, nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "https://souq.example/payment-failed?transaction_id=gw-2",
		},
		{
			name:  "Cancelled payment redirects to cancelled page",
			query: "status=cancelled&transaction_id=gw-3&token=tok",
			prepareMock: func() {
				service.EXPECT().
					ProcessCallback(gomock.Any(), "cancelled", "gw-3", "tok").
					Return(&webhook.CallbackResult{Status: domain.StatusCancelled, TransactionID: "gw-3"}, nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "https://souq.example/payment-cancelled?transaction_id=gw-3",
		},
		{
			name:  "Missing transaction id",
			query: "status=success&token=tok",
			prepareMock: func() {
				service.EXPECT().
					ProcessCallback(gomock.Any(), "success", "", "tok").
					Return(nil, domain.ErrMissingTransactionID)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Token mismatch",
			query: "status=success&transaction_id=gw-1&token=forged",
			prepareMock: func() {
				service.EXPECT().
					ProcessCallback(gomock.Any(), "success", "gw-1", "forged").
					Return(nil, domain.ErrTokenMismatch)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:  "Unknown transaction",
			query: "status=success&transaction_id=gw-404&token=tok",
			prepareMock: func() {
				service.EXPECT().
					ProcessCallback(gomock.Any(), "success", "gw-404", "tok").
					Return(nil, domain.ErrTransactionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/payments/callback?"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.CallbackGET(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
			}
		})
	}
}

func TestCallbackPOST(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Successful callback",
			body: `{"status":"success","transaction_id":"gw-1","token":"tok"}`,
			prepareMock: func() {
				service.EXPECT().
					ProcessCallback(gomock.Any(), "success", "gw-1", "tok").
					Return(&webhook.CallbackResult{Status: domain.StatusCompleted, TransactionID: "gw-1"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"status":"completed"`,
		},
		{
			name: "Duplicate delivery",
			body: `{"status":"success","transaction_id":"gw-1","token":"tok"}`,
			prepareMock: func() {
				service.EXPECT().
					ProcessCallback(gomock.Any(), "success", "gw-1", "tok").
					Return(&webhook.CallbackResult{Status: domain.StatusCompleted, TransactionID: "gw-1", Replayed: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "already processed",
		},
		{
			name:         "Malformed body",
			body:         `{"status":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown callback status",
			body: `{"status":"exploded","transaction_id":"gw-1","token":"tok"}`,
			prepareMock: func() {
				service.EXPECT().
					ProcessCallback(gomock.Any(), "exploded", "gw-1", "tok").
					Return(nil, domain.ErrUnknownCallbackState)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/payments/callback", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.CallbackPOST(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
