package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/dto"
	"github.com/souqpay/souqpay/internal/service/walletledger"
	"github.com/souqpay/souqpay/internal/service/webhook"
	"github.com/souqpay/souqpay/pkg/auth"
	"github.com/souqpay/souqpay/pkg/utils"
)

type Service interface {
	Operate(ctx context.Context, op walletledger.Operation) (*walletledger.OperationResult, error)
	GetBalance(ctx context.Context, userID int64) (*domain.Wallet, error)
	GetAdminWallet(ctx context.Context) (*domain.AdminWallet, error)
	ListTransactions(ctx context.Context, userID int64, f domain.TransactionFilter) ([]domain.Transaction, error)
}

type RechargeService interface {
	CreateRecharge(ctx context.Context, userID int64, amount decimal.Decimal, callbackURL string) (*webhook.RechargeIntent, error)
}

type WalletHandler struct {
	walletService   Service
	rechargeService RechargeService
	callbackURL     string
}

func New(walletService Service, rechargeService RechargeService, callbackURL string) *WalletHandler {
	return &WalletHandler{
		walletService:   walletService,
		rechargeService: rechargeService,
		callbackURL:     callbackURL,
	}
}

// Recharge godoc
//
//	@Summary		Start a wallet recharge
//	@Description	Opens a payment gateway checkout session and records a pending recharge transaction. The wallet is credited only when the gateway confirms payment.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RechargeRequestDTO	true	"Recharge amount"
//	@Success		200		{object}	dto.RechargeResponseDTO	"Checkout session opened"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/recharge [post]
func (h *WalletHandler) Recharge(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.RechargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	intent, err := h.rechargeService.CreateRecharge(r.Context(), userID, req.Amount, h.callbackURL)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, "amount must be positive")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RechargeResponseDTO{
		Reference:             intent.Reference,
		ExternalTransactionID: intent.ExternalTransactionID,
		PaymentURL:            intent.PaymentURL,
	})
}

// Operate godoc
//
//	@Summary		Execute a wallet operation
//	@Description	Runs one administrative wallet operation: admin_transfer (signed, moves funds between the platform and a user), recharge (direct credit) or withdrawal (debit with the configured seller fee).
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletOperationRequestDTO	true	"Operation payload"
//	@Success		200		{object}	dto.WalletOperationResponseDTO	"Resulting balances"
//	@Failure		400		{object}	utils.Response					"Unknown operation or invalid amount"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient funds"
//	@Failure		404		{object}	utils.Response					"Wallet not found"
//	@Failure		409		{object}	utils.Response					"Concurrent update conflict"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/operations [post]
func (h *WalletHandler) Operate(w http.ResponseWriter, r *http.Request) {
	var req dto.WalletOperationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.walletService.Operate(r.Context(), walletledger.Operation{
		Operation:     req.Operation,
		UserID:        req.UserID,
		Amount:        req.Amount,
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		Metadata:      req.Metadata,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownOperation), errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient funds")
		case errors.Is(err, domain.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "wallet not found")
		case errors.Is(err, domain.ErrVersionConflict):
			utils.RespondWithError(w, http.StatusConflict, "wallet busy, retry later")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WalletOperationResponseDTO{
		Amount:          result.Amount,
		NewUserBalance:  result.NewUserBalance,
		NewAdminBalance: result.NewAdminBalance,
	})
}

// GetBalance godoc
//
//	@Summary		Get a user wallet balance
//	@Description	Retrieve the wallet balance and lifetime counters for a user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int						true	"User id"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		400		{object}	utils.Response			"Invalid user id"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Wallet not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/{userID}/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	wallet, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "wallet not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:        wallet.UserID,
		Balance:       wallet.Balance,
		TotalEarned:   wallet.TotalEarned,
		TotalSpent:    wallet.TotalSpent,
		TotalCashback: wallet.TotalCashback,
	})
}

// GetAdminWallet godoc
//
//	@Summary		Get the platform wallet aggregate
//	@Description	Retrieve the singleton platform wallet with its commission and cashback totals.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdminWalletResponseDTO	"Platform wallet"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/wallet [get]
func (h *WalletHandler) GetAdminWallet(w http.ResponseWriter, r *http.Request) {
	aw, err := h.walletService.GetAdminWallet(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AdminWalletResponseDTO{
		Balance:            aw.Balance,
		AvailableFunds:     aw.AvailableFunds,
		PendingFunds:       aw.PendingFunds,
		TotalCommissions:   aw.TotalCommissions,
		TotalCashbacksPaid: aw.TotalCashbacksPaid,
		TotalTransactions:  aw.TotalTransactions,
	})
}

// GetTransactions godoc
//
//	@Summary		List a user's transactions
//	@Description	List audit transactions for a user, newest first, with optional type and date-range filters.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int		true	"User id"
//	@Param			type	query		string	false	"Transaction type filter"
//	@Param			from	query		string	false	"RFC3339 lower bound (inclusive)"
//	@Param			to		query		string	false	"RFC3339 upper bound (exclusive)"
//	@Param			limit	query		int		false	"Maximum rows, default 100"
//	@Success		200		{array}		dto.TransactionResponseDTO	"Transactions"
//	@Failure		400		{object}	utils.Response				"Invalid parameters"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/users/{userID}/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	txs, err := h.walletService.ListTransactions(r.Context(), userID, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txs))
	for i, t := range txs {
		response[i] = dto.TransactionResponseDTO{
			ID:         t.ID,
			Reference:  t.Reference,
			Type:       string(t.Type),
			Amount:     t.Amount,
			Status:     string(t.Status),
			OrderID:    t.OrderID,
			Commission: t.CommissionAmount,
			Cashback:   t.CashbackAmount,
			CreatedAt:  t.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func parseFilter(r *http.Request) (domain.TransactionFilter, error) {
	var f domain.TransactionFilter
	q := r.URL.Query()

	f.Type = domain.TransactionType(q.Get("type"))
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, errors.New("invalid from date")
		}
		f.From = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, errors.New("invalid to date")
		}
		f.To = t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return f, errors.New("invalid limit")
		}
		f.Limit = n
	}
	return f, nil
}
