package walletledger

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/pg"
	"github.com/souqpay/souqpay/internal/service/commission"
	"github.com/souqpay/souqpay/pkg/validate"
)

//go:generate mockgen -source=walletledger.go -destination=walletledger_mock.go -package=walletledger

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	Create(ctx context.Context, userID int64) (*domain.Wallet, error)
	UpdateCAS(ctx context.Context, wallet *domain.Wallet, oldVersion int64) error
}

type AdminWalletRepo interface {
	Get(ctx context.Context) (*domain.AdminWallet, error)
	UpdateCAS(ctx context.Context, aw *domain.AdminWallet, oldVersion int64) error
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) (int64, error)
	ListByUser(ctx context.Context, userID int64, f domain.TransactionFilter) ([]domain.Transaction, error)
}

type OutboxRepo interface {
	Append(ctx context.Context, evt *domain.OutboxEvent) error
}

type CommissionRepo interface {
	GetActive(ctx context.Context) (*domain.CommissionSetting, error)
}

// BalanceCache is a best-effort read cache: never consulted for mutation
// decisions, refreshed after a successful commit.
type BalanceCache interface {
	SetBalance(ctx context.Context, userID int64, balance decimal.Decimal)
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, bool)
}

const (
	OpAdminTransfer = "admin_transfer"
	OpRecharge      = "recharge"
	OpWithdrawal    = "withdrawal"
)

// Delta is one signed balance mutation against a single user wallet.
type Delta struct {
	UserID           int64
	Amount           decimal.Decimal
	Type             domain.TransactionType
	Metadata         domain.Metadata
	Reference        string
	ExternalID       *string
	FromUserID       *int64
	ToUserID         *int64
	OrderID          *int64
	ProductID        *int64
	CommissionAmount decimal.Decimal
	CashbackAmount   decimal.Decimal
	// AllowOverdraft marks an administrative debit that may push the balance
	// below zero.
	AllowOverdraft bool
}

type DeltaResult struct {
	TransactionID int64
	NewBalance    decimal.Decimal
}

type Operation struct {
	Operation     string
	UserID        int64
	Amount        decimal.Decimal
	DescriptionAr string
	DescriptionEn string
	Metadata      map[string]string
}

type OperationResult struct {
	Amount          decimal.Decimal
	NewUserBalance  decimal.Decimal
	NewAdminBalance *decimal.Decimal
}

type Service struct {
	wallets     WalletRepo
	admin       AdminWalletRepo
	txs         TransactionRepo
	outbox      OutboxRepo
	commissions CommissionRepo
	txManager   pg.TXManager
	cache       BalanceCache
	maxRetries  uint64
}

func New(wallets WalletRepo, admin AdminWalletRepo, txs TransactionRepo, outbox OutboxRepo,
	commissions CommissionRepo, txManager pg.TXManager, cache BalanceCache, maxRetries int) *Service {
	if maxRetries <= 0 {
		maxRetries = 5
	}
	return &Service{
		wallets:     wallets,
		admin:       admin,
		txs:         txs,
		outbox:      outbox,
		commissions: commissions,
		txManager:   txManager,
		cache:       cache,
		maxRetries:  uint64(maxRetries),
	}
}

// Retry wraps fn in the bounded jittered-backoff loop used for every
// version-CAS unit. Only domain.ErrVersionConflict is retried; after the
// budget is spent the conflict surfaces to the caller.
func (s *Service) Retry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithJitter(10*time.Millisecond, retry.NewConstant(25*time.Millisecond))
	backoff = retry.WithMaxRetries(s.maxRetries, backoff)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if errors.Is(err, domain.ErrVersionConflict) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// ApplyDelta runs one mutation as its own transactional unit with retries.
func (s *Service) ApplyDelta(ctx context.Context, d Delta) (*DeltaResult, error) {
	var result *DeltaResult
	err := s.Retry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			var err error
			result, err = s.ApplyDeltaTx(ctx, d)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	s.cache.SetBalance(ctx, d.UserID, result.NewBalance)
	return result, nil
}

// RefreshBalance publishes a committed balance to the read cache. Callers
// that drive ApplyDeltaTx inside their own transaction invoke it once the
// transaction has committed; doing it earlier would cache an uncommitted value.
func (s *Service) RefreshBalance(ctx context.Context, userID int64, balance decimal.Decimal) {
	s.cache.SetBalance(ctx, userID, balance)
}

// ApplyDeltaTx performs one read-compute-write cycle against the wallet and
// appends the audit transaction. The caller owns the transaction and the
// retry loop; a stale wallet version surfaces as domain.ErrVersionConflict.
func (s *Service) ApplyDeltaTx(ctx context.Context, d Delta) (*DeltaResult, error) {
	if d.Amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	wallet, err := s.wallets.GetByUserID(ctx, d.UserID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		if d.Amount.IsNegative() {
			return nil, domain.ErrWalletNotFound
		}
		wallet, err = s.wallets.Create(ctx, d.UserID)
		if err != nil {
			return nil, err
		}
	}

	newBalance := wallet.Balance.Add(d.Amount)
	if newBalance.IsNegative() && !d.AllowOverdraft {
		return nil, domain.ErrInsufficientFunds
	}

	reference := d.Reference
	if reference == "" {
		reference = NewReference()
	}

	tx := &domain.Transaction{
		Reference:             reference,
		ExternalTransactionID: d.ExternalID,
		UserID:                d.UserID,
		FromUserID:            d.FromUserID,
		ToUserID:              d.ToUserID,
		Type:                  d.Type,
		Amount:                d.Amount,
		CommissionAmount:      d.CommissionAmount,
		CashbackAmount:        d.CashbackAmount,
		Status:                domain.StatusCompleted,
		OrderID:               d.OrderID,
		ProductID:             d.ProductID,
		Metadata:              d.Metadata,
	}
	txID, err := s.txs.Create(ctx, tx)
	if err != nil {
		return nil, err
	}

	oldVersion := wallet.Version
	wallet.Balance = newBalance
	wallet.LastTransactionID = &txID
	if d.Amount.IsPositive() {
		wallet.TotalEarned = wallet.TotalEarned.Add(d.Amount)
		if d.Type == domain.TypeCashback {
			wallet.TotalCashback = wallet.TotalCashback.Add(d.Amount)
		}
	} else {
		wallet.TotalSpent = wallet.TotalSpent.Add(d.Amount.Neg())
	}

	if err := s.wallets.UpdateCAS(ctx, wallet, oldVersion); err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(map[string]any{
		"user_id":        d.UserID,
		"amount":         d.Amount,
		"balance":        newBalance,
		"type":           d.Type,
		"transaction_id": txID,
	})
	evt := &domain.OutboxEvent{
		ID:          NewReference(),
		Aggregate:   "wallet",
		AggregateID: d.UserID,
		EventType:   "wallet.delta_applied",
		Payload:     payload,
	}
	if err := s.outbox.Append(ctx, evt); err != nil {
		return nil, err
	}

	return &DeltaResult{TransactionID: txID, NewBalance: newBalance}, nil
}

// UpdateAdminTx applies mutate to the platform aggregate under the same CAS
// discipline as user wallets. total_transactions is bumped here so callers
// never forget it.
func (s *Service) UpdateAdminTx(ctx context.Context, mutate func(aw *domain.AdminWallet)) (*domain.AdminWallet, error) {
	aw, err := s.admin.Get(ctx)
	if err != nil {
		return nil, err
	}
	oldVersion := aw.Version
	mutate(aw)
	aw.TotalTransactions++
	if err := s.admin.UpdateCAS(ctx, aw, oldVersion); err != nil {
		return nil, err
	}
	return aw, nil
}

// Operate serves the internal wallet-operation RPC consumed by the admin UI.
func (s *Service) Operate(ctx context.Context, op Operation) (*OperationResult, error) {
	meta := domain.Metadata{
		DescriptionAr: op.DescriptionAr,
		DescriptionEn: op.DescriptionEn,
		Extra:         op.Metadata,
	}

	switch op.Operation {
	case OpAdminTransfer:
		return s.adminTransfer(ctx, op.UserID, op.Amount, meta)
	case OpRecharge:
		return s.recharge(ctx, op.UserID, op.Amount, meta)
	case OpWithdrawal:
		return s.withdrawal(ctx, op.UserID, op.Amount, meta)
	default:
		return nil, domain.ErrUnknownOperation
	}
}

// adminTransfer moves value between the platform wallet and a user wallet.
// A positive amount credits the user at the platform's expense; a negative
// amount claws funds back.
func (s *Service) adminTransfer(ctx context.Context, userID int64, amount decimal.Decimal, meta domain.Metadata) (*OperationResult, error) {
	if amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	txType := domain.TypeAdminRecharge
	if amount.IsNegative() {
		txType = domain.TypeTransferOut
	}

	var result *OperationResult
	err := s.Retry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			delta, err := s.ApplyDeltaTx(ctx, Delta{
				UserID:   userID,
				Amount:   amount,
				Type:     txType,
				Metadata: meta,
			})
			if err != nil {
				return err
			}

			aw, err := s.UpdateAdminTx(ctx, func(aw *domain.AdminWallet) {
				aw.Balance = aw.Balance.Sub(amount)
			})
			if err != nil {
				return err
			}

			adminBalance := aw.Balance
			result = &OperationResult{
				Amount:          amount,
				NewUserBalance:  delta.NewBalance,
				NewAdminBalance: &adminBalance,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	s.cache.SetBalance(ctx, userID, result.NewUserBalance)
	zap.L().Info("admin transfer applied",
		zap.Int64("userID", userID), zap.String("amount", amount.String()))
	return result, nil
}

// recharge credits a user wallet directly; the money arrived outside the
// wallet system, so the platform aggregate is untouched.
func (s *Service) recharge(ctx context.Context, userID int64, amount decimal.Decimal, meta domain.Metadata) (*OperationResult, error) {
	if !validate.IsPositiveAmount(amount) {
		return nil, domain.ErrInvalidAmount
	}

	delta, err := s.ApplyDelta(ctx, Delta{
		UserID:   userID,
		Amount:   amount,
		Type:     domain.TypeWalletRecharge,
		Metadata: meta,
	})
	if err != nil {
		return nil, err
	}
	return &OperationResult{Amount: amount, NewUserBalance: delta.NewBalance}, nil
}

// withdrawal debits the user by the requested amount and charges the
// configured seller withdrawal fee to the platform's benefit.
func (s *Service) withdrawal(ctx context.Context, userID int64, amount decimal.Decimal, meta domain.Metadata) (*OperationResult, error) {
	if !validate.IsPositiveAmount(amount) {
		return nil, domain.ErrInvalidAmount
	}

	fee := decimal.Zero
	setting, err := s.commissions.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if setting != nil && setting.SellerWithdrawalFeePercent.IsPositive() {
		fee, err = commission.Fee(amount, setting.SellerWithdrawalFeePercent)
		if err != nil {
			return nil, err
		}
	}

	var result *OperationResult
	err = s.Retry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			delta, err := s.ApplyDeltaTx(ctx, Delta{
				UserID:           userID,
				Amount:           amount.Neg(),
				Type:             domain.TypeWithdrawal,
				Metadata:         meta,
				CommissionAmount: fee,
			})
			if err != nil {
				return err
			}

			aw, err := s.UpdateAdminTx(ctx, func(aw *domain.AdminWallet) {
				aw.Balance = aw.Balance.Add(fee)
				aw.TotalCommissions = aw.TotalCommissions.Add(fee)
			})
			if err != nil {
				return err
			}

			adminBalance := aw.Balance
			result = &OperationResult{
				Amount:          amount.Neg(),
				NewUserBalance:  delta.NewBalance,
				NewAdminBalance: &adminBalance,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	s.cache.SetBalance(ctx, userID, result.NewUserBalance)
	return result, nil
}

// GetBalance serves the read path, cache first.
func (s *Service) GetBalance(ctx context.Context, userID int64) (*domain.Wallet, error) {
	if balance, ok := s.cache.GetBalance(ctx, userID); ok {
		return &domain.Wallet{UserID: userID, Balance: balance}, nil
	}

	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrWalletNotFound
	}
	s.cache.SetBalance(ctx, userID, wallet.Balance)
	return wallet, nil
}

func (s *Service) GetAdminWallet(ctx context.Context) (*domain.AdminWallet, error) {
	return s.admin.Get(ctx)
}

// ListTransactions returns a user's audit rows, newest first.
func (s *Service) ListTransactions(ctx context.Context, userID int64, f domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.txs.ListByUser(ctx, userID, f)
}

// NewReference returns a sortable unique id used for transaction references
// and outbox event ids.
func NewReference() string {
	return ulid.Make().String()
}
