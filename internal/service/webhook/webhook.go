package webhook

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/gateway"
	"github.com/souqpay/souqpay/internal/pg"
	"github.com/souqpay/souqpay/internal/service/walletledger"
	"github.com/souqpay/souqpay/pkg/validate"
)

//go:generate mockgen -source=webhook.go -destination=webhook_mock.go -package=webhook

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) (int64, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.Transaction, error)
	MarkTerminal(ctx context.Context, id int64, status domain.TransactionStatus) (bool, error)
}

type Ledger interface {
	ApplyDeltaTx(ctx context.Context, d walletledger.Delta) (*walletledger.DeltaResult, error)
	RefreshBalance(ctx context.Context, userID int64, balance decimal.Decimal)
	Retry(ctx context.Context, fn func(ctx context.Context) error) error
}

type OutboxRepo interface {
	Append(ctx context.Context, evt *domain.OutboxEvent) error
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req gateway.CheckoutRequest) (*gateway.Checkout, error)
}

type TokenHasher interface {
	NewToken() (string, error)
	HashToken(token string) (string, error)
	CompareToken(hashedToken, token string) bool
}

// Service reconciles asynchronous gateway callbacks with the ledger. Gateways
// deliver at least once; correctness rests on the terminal-status guard, not
// on network-level deduplication.
type Service struct {
	txs       TransactionRepo
	ledger    Ledger
	outbox    OutboxRepo
	gateway   Gateway
	hasher    TokenHasher
	txManager pg.TXManager
}

func New(txs TransactionRepo, ledger Ledger, outbox OutboxRepo, gw Gateway,
	hasher TokenHasher, txManager pg.TXManager) *Service {
	return &Service{
		txs:       txs,
		ledger:    ledger,
		outbox:    outbox,
		gateway:   gw,
		hasher:    hasher,
		txManager: txManager,
	}
}

// statusByCallback maps every callback status the gateway is known to send
// onto the terminal transaction status it implies.
var statusByCallback = map[string]domain.TransactionStatus{
	"success":    domain.StatusCompleted,
	"paid":       domain.StatusCompleted,
	"authorised": domain.StatusCompleted,
	"declined":   domain.StatusFailed,
	"failed":     domain.StatusFailed,
	"cancelled":  domain.StatusCancelled,
}

type CallbackResult struct {
	Status        domain.TransactionStatus
	TransactionID string
	Replayed      bool
}

// ProcessCallback applies one gateway callback exactly once.
func (s *Service) ProcessCallback(ctx context.Context, callbackStatus, externalID, token string) (*CallbackResult, error) {
	if externalID == "" {
		return nil, domain.ErrMissingTransactionID
	}

	tx, err := s.txs.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrTransactionNotFound
	}

	if !s.hasher.CompareToken(tx.Metadata.SecurityToken, token) {
		zap.L().Warn("webhook token mismatch",
			zap.String("externalID", externalID), zap.Int64("userID", tx.UserID))
		return nil, domain.ErrTokenMismatch
	}

	// replay guard: a terminal transaction is immutable, the duplicate
	// delivery succeeds with no further side effects
	if tx.Status.Terminal() {
		return &CallbackResult{Status: tx.Status, TransactionID: externalID, Replayed: true}, nil
	}

	target, ok := statusByCallback[callbackStatus]
	if !ok {
		return nil, domain.ErrUnknownCallbackState
	}

	replayed := false
	var credited *walletledger.DeltaResult
	err = s.ledger.Retry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			credited = nil
			moved, err := s.txs.MarkTerminal(ctx, tx.ID, target)
			if err != nil {
				return err
			}
			if !moved {
				// a concurrent delivery won the transition
				replayed = true
				return nil
			}

			if target == domain.StatusCompleted && tx.Type == domain.TypeWalletRecharge {
				res, err := s.ledger.ApplyDeltaTx(ctx, walletledger.Delta{
					UserID: tx.UserID,
					Amount: tx.Amount,
					Type:   domain.TypeWalletCredit,
					Metadata: domain.Metadata{
						SourceID:   tx.ID,
						GatewayRef: externalID,
					},
				})
				if err != nil {
					return err
				}
				credited = res
			}

			payload, _ := json.Marshal(map[string]any{
				"external_transaction_id": externalID,
				"transaction_id":          tx.ID,
				"status":                  target,
			})
			return s.outbox.Append(ctx, &domain.OutboxEvent{
				ID:          walletledger.NewReference(),
				Aggregate:   "payment",
				AggregateID: tx.ID,
				EventType:   "payment." + string(target),
				Payload:     payload,
			})
		})
	})
	if err != nil {
		return nil, err
	}
	if credited != nil {
		s.ledger.RefreshBalance(ctx, tx.UserID, credited.NewBalance)
	}

	if replayed {
		current, err := s.txs.GetByExternalID(ctx, externalID)
		if err != nil || current == nil {
			return &CallbackResult{Status: target, TransactionID: externalID, Replayed: true}, nil
		}
		return &CallbackResult{Status: current.Status, TransactionID: externalID, Replayed: true}, nil
	}

	zap.L().Info("payment callback processed",
		zap.String("externalID", externalID), zap.String("status", string(target)))
	return &CallbackResult{Status: target, TransactionID: externalID}, nil
}

type RechargeIntent struct {
	Reference             string
	ExternalTransactionID string
	PaymentURL            string
}

// CreateRecharge opens a gateway checkout session and records the pending
// wallet_recharge transaction that the callback later settles. The security
// token travels to the gateway in plain form; only its bcrypt hash is stored.
func (s *Service) CreateRecharge(ctx context.Context, userID int64, amount decimal.Decimal, callbackURL string) (*RechargeIntent, error) {
	if !validate.IsPositiveAmount(amount) {
		return nil, domain.ErrInvalidAmount
	}

	token, err := s.hasher.NewToken()
	if err != nil {
		return nil, err
	}
	hashedToken, err := s.hasher.HashToken(token)
	if err != nil {
		return nil, err
	}

	reference := walletledger.NewReference()
	checkout, err := s.gateway.CreateCheckout(ctx, gateway.CheckoutRequest{
		Reference:   reference,
		UserID:      userID,
		Amount:      amount,
		Token:       token,
		CallbackURL: callbackURL,
	})
	if err != nil {
		zap.L().Error("gateway checkout failed", zap.Error(err))
		return nil, err
	}

	tx := &domain.Transaction{
		Reference:             reference,
		ExternalTransactionID: &checkout.TransactionID,
		UserID:                userID,
		Type:                  domain.TypeWalletRecharge,
		Amount:                amount,
		Status:                domain.StatusPending,
		Metadata: domain.Metadata{
			SecurityToken: hashedToken,
			GatewayRef:    checkout.TransactionID,
		},
	}
	if _, err := s.txs.Create(ctx, tx); err != nil {
		return nil, err
	}

	return &RechargeIntent{
		Reference:             reference,
		ExternalTransactionID: checkout.TransactionID,
		PaymentURL:            checkout.PaymentURL,
	}, nil
}
