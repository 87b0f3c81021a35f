package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/souqpay/souqpay/docs"
	"github.com/souqpay/souqpay/internal/cache"
	"github.com/souqpay/souqpay/internal/config"
	"github.com/souqpay/souqpay/internal/pg"
	"github.com/souqpay/souqpay/internal/repo"
	"github.com/souqpay/souqpay/internal/service"
	"github.com/souqpay/souqpay/internal/service/webhook"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	services := service.New(repo.New(mockDB), pg.NewMockTXManager(ctrl),
		cache.Noop{}, webhook.NewMockGateway(ctrl), 3)
	cfg := &config.Config{RedirectBase: "https://souq.example"}

	h := New(services, cfg)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)

	mockPaymentHandler.EXPECT().CallbackGET(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().CallbackPOST(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Recharge(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Operate(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetAdminWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().ConfirmOrder(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		PaymentHandler: mockPaymentHandler,
		WalletHandler:  mockWalletHandler,
		OrderHandler:   mockOrderHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/payments/callback", http.StatusOK},
		{"POST", "/api/payments/callback", http.StatusOK},
		{"POST", "/api/wallet/recharge", http.StatusUnauthorized},
		{"POST", "/api/wallet/operations", http.StatusUnauthorized},
		{"GET", "/api/wallet/42/balance", http.StatusUnauthorized},
		{"GET", "/api/admin/wallet", http.StatusUnauthorized},
		{"GET", "/api/users/42/transactions", http.StatusUnauthorized},
		{"POST", "/api/orders/501/confirm", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
