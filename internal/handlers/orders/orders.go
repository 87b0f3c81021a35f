package orders

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/dto"
	"github.com/souqpay/souqpay/internal/service/settlement"
	"github.com/souqpay/souqpay/pkg/utils"
)

type Service interface {
	ConfirmOrder(ctx context.Context, orderID int64) (*settlement.Settlement, error)
}

type OrderHandler struct {
	settlementService Service
}

func New(settlementService Service) *OrderHandler {
	return &OrderHandler{
		settlementService: settlementService,
	}
}

// ConfirmOrder godoc
//
//	@Summary		Confirm and settle an order
//	@Description	Settles a pending order: debits the buyer (wallet payments), credits the seller net of commission, pays the buyer cashback and books the platform gain, all atomically.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		int							true	"Order id"
//	@Success		200		{object}	dto.ConfirmOrderResponseDTO	"Settlement breakdown"
//	@Failure		400		{object}	utils.Response				"Invalid order id"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Buyer has insufficient funds"
//	@Failure		404		{object}	utils.Response				"Order not found"
//	@Failure		409		{object}	utils.Response				"Concurrent update conflict"
//	@Failure		422		{object}	utils.Response				"Order is not pending"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders/{orderID}/confirm [post]
func (h *OrderHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	result, err := h.settlementService.ConfirmOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "order not found")
		case errors.Is(err, domain.ErrOrderNotPending):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "order is not pending")
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient funds")
		case errors.Is(err, domain.ErrNoCommissionSetting):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "no active commission setting")
		case errors.Is(err, domain.ErrVersionConflict):
			utils.RespondWithError(w, http.StatusConflict, "wallet busy, retry later")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmOrderResponseDTO{
		OrderID:    result.OrderID,
		BasePrice:  result.BasePrice,
		Commission: result.Commission,
		Cashback:   result.Cashback,
		FinalPrice: result.FinalPrice,
	})
}
