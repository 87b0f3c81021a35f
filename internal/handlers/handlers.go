package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/souqpay/souqpay/docs"
	"github.com/souqpay/souqpay/internal/config"
	ordershandlers "github.com/souqpay/souqpay/internal/handlers/orders"
	paymenthandlers "github.com/souqpay/souqpay/internal/handlers/payments"
	wallethandlers "github.com/souqpay/souqpay/internal/handlers/wallet"
	"github.com/souqpay/souqpay/internal/service"
	"github.com/souqpay/souqpay/pkg/auth"
)

type PaymentHandler interface {
	CallbackGET(w http.ResponseWriter, r *http.Request)
	CallbackPOST(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	Recharge(w http.ResponseWriter, r *http.Request)
	Operate(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetAdminWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	ConfirmOrder(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PaymentHandler PaymentHandler
	WalletHandler  WalletHandler
	OrderHandler   OrderHandler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	callbackURL := cfg.RedirectBase + "/api/payments/callback"
	return &Handlers{
		PaymentHandler: paymenthandlers.New(s.Webhook, cfg.RedirectBase),
		WalletHandler:  wallethandlers.New(s.Ledger, s.Webhook, callbackURL),
		OrderHandler:   ordershandlers.New(s.Settlement),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/payments/callback", func(r chi.Router) {
			r.Get("/", h.PaymentHandler.CallbackGET)
			r.Post("/", h.PaymentHandler.CallbackPOST)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Post("/recharge", h.WalletHandler.Recharge)
				r.Post("/operations", h.WalletHandler.Operate)
				r.Get("/{userID}/balance", h.WalletHandler.GetBalance)
			})
			r.Get("/admin/wallet", h.WalletHandler.GetAdminWallet)
			r.Get("/users/{userID}/transactions", h.WalletHandler.GetTransactions)
			r.Post("/orders/{orderID}/confirm", h.OrderHandler.ConfirmOrder)
		})
	})

	return r
}
