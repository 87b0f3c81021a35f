package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/dto"
	"github.com/souqpay/souqpay/internal/service/settlement"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestConfirmOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		orderID      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Successful settlement",
			orderID: "501",
			prepareMock: func() {
				service.EXPECT().
					ConfirmOrder(gomock.Any(), int64(501)).
					Return(&settlement.Settlement{
						OrderID:    501,
						BasePrice:  decimal.RequireFromString("100.00"),
						Commission: decimal.RequireFromString("5.00"),
						Cashback:   decimal.RequireFromString("1.58"),
						FinalPrice: decimal.RequireFromString("105.00"),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Order not found",
			orderID: "999",
			prepareMock: func() {
				service.EXPECT().
					ConfirmOrder(gomock.Any(), int64(999)).
					Return(nil, domain.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "Order already settled",
			orderID: "501",
			prepareMock: func() {
				service.EXPECT().
					ConfirmOrder(gomock.Any(), int64(501)).
					Return(nil, domain.ErrOrderNotPending)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:    "Buyer cannot pay",
			orderID: "501",
			prepareMock: func() {
				service.EXPECT().
					ConfirmOrder(gomock.Any(), int64(501)).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:    "Conflict after retry budget",
			orderID: "501",
			prepareMock: func() {
				service.EXPECT().
					ConfirmOrder(gomock.Any(), int64(501)).
					Return(nil, domain.ErrVersionConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid order id",
			orderID:      "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/orders/"+tt.orderID+"/confirm", nil)
			r = withURLParam(r, "orderID", tt.orderID)
			w := httptest.NewRecorder()
			handler.ConfirmOrder(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ConfirmOrderResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(501), body.OrderID)
				assert.True(t, body.FinalPrice.Equal(decimal.RequireFromString("105.00")))
			}
		})
	}
}
