package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/dto"
	"github.com/souqpay/souqpay/internal/service/webhook"
	"github.com/souqpay/souqpay/pkg/utils"
)

type Service interface {
	ProcessCallback(ctx context.Context, callbackStatus, externalID, token string) (*webhook.CallbackResult, error)
}

type PaymentHandler struct {
	webhookService Service
	redirectBase   string
}

func New(webhookService Service, redirectBase string) *PaymentHandler {
	return &PaymentHandler{
		webhookService: webhookService,
		redirectBase:   redirectBase,
	}
}

type callbackParams struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Token         string `json:"token"`
}

// CallbackGET godoc
//
//	@Summary		Payment gateway browser callback
//	@Description	Handles the gateway's browser redirect after a checkout session finishes and forwards the user to the matching result page.
//	@Tags			Payments
//	@Param			status			query	string	true	"Gateway callback status"
//	@Param			transaction_id	query	string	true	"External transaction id"
//	@Param			token			query	string	true	"Security token issued at checkout"
//	@Success		302	{string}	string			"Redirect to the payment result page"
//	@Failure		400	{object}	utils.Response	"Missing transaction id"
//	@Failure		403	{object}	utils.Response	"Token mismatch"
//	@Failure		404	{object}	utils.Response	"Unknown transaction"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/callback [get]
func (h *PaymentHandler) CallbackGET(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := callbackParams{
		Status:        q.Get("status"),
		TransactionID: q.Get("transaction_id"),
		Token:         q.Get("token"),
	}

	result, err := h.webhookService.ProcessCallback(r.Context(), params.Status, params.TransactionID, params.Token)
	if err != nil {
		code, message := mapCallbackError(err)
		utils.RespondWithError(w, code, message)
		return
	}

	http.Redirect(w, r, h.resultURL(result), http.StatusFound)
}

// CallbackPOST godoc
//
//	@Summary		Payment gateway server callback
//	@Description	Handles the gateway's server-to-server notification for a checkout session. Duplicate deliveries succeed without repeating side effects.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dto.CallbackResponseDTO	"Callback processed"
//	@Failure		400	{object}	utils.Response			"Missing transaction id or unknown status"
//	@Failure		403	{object}	utils.Response			"Token mismatch"
//	@Failure		404	{object}	utils.Response			"Unknown transaction"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/payments/callback [post]
func (h *PaymentHandler) CallbackPOST(w http.ResponseWriter, r *http.Request) {
	var params callbackParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.webhookService.ProcessCallback(r.Context(), params.Status, params.TransactionID, params.Token)
	if err != nil {
		code, message := mapCallbackError(err)
		utils.RespondWithError(w, code, message)
		return
	}

	message := "payment processed"
	if result.Replayed {
		message = "payment already processed"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CallbackResponseDTO{
		Success:       true,
		Message:       message,
		Status:        string(result.Status),
		TransactionID: result.TransactionID,
	})
}

func (h *PaymentHandler) resultURL(result *webhook.CallbackResult) string {
	page := "/payment-failed"
	switch result.Status {
	case domain.StatusCompleted:
		page = "/payment-success"
	case domain.StatusCancelled:
		page = "/payment-cancelled"
	}
	return h.redirectBase + page + "?transaction_id=" + url.QueryEscape(result.TransactionID)
}

func mapCallbackError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingTransactionID):
		return http.StatusBadRequest, "transaction id is required"
	case errors.Is(err, domain.ErrUnknownCallbackState):
		return http.StatusBadRequest, "unknown callback status"
	case errors.Is(err, domain.ErrTokenMismatch):
		return http.StatusForbidden, "security token mismatch"
	case errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound, "transaction not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
