package settlement

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/pg"
	"github.com/souqpay/souqpay/internal/service/commission"
	"github.com/souqpay/souqpay/internal/service/walletledger"
)

//go:generate mockgen -source=settlement.go -destination=settlement_mock.go -package=settlement

type OrderRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	MarkCompleted(ctx context.Context, order *domain.Order) (bool, error)
}

type CommissionRepo interface {
	GetActive(ctx context.Context) (*domain.CommissionSetting, error)
}

type HistoryRepo interface {
	CreateCommission(ctx context.Context, h *domain.CommissionHistory) (*domain.CommissionHistory, error)
	CreateCashback(ctx context.Context, h *domain.CashbackHistory) (*domain.CashbackHistory, error)
	ListCommissionsBySeller(ctx context.Context, sellerID int64) ([]domain.CommissionHistory, error)
}

type Ledger interface {
	ApplyDeltaTx(ctx context.Context, d walletledger.Delta) (*walletledger.DeltaResult, error)
	RefreshBalance(ctx context.Context, userID int64, balance decimal.Decimal)
	UpdateAdminTx(ctx context.Context, mutate func(aw *domain.AdminWallet)) (*domain.AdminWallet, error)
	Retry(ctx context.Context, fn func(ctx context.Context) error) error
}

type OutboxRepo interface {
	Append(ctx context.Context, evt *domain.OutboxEvent) error
}

// Service settles confirmed orders: it moves the buyer's money to the seller,
// books the platform commission, and pays the buyer cashback, all inside one
// database transaction.
type Service struct {
	orders      OrderRepo
	commissions CommissionRepo
	history     HistoryRepo
	ledger      Ledger
	outbox      OutboxRepo
	txManager   pg.TXManager
}

func New(orders OrderRepo, commissions CommissionRepo, history HistoryRepo,
	ledger Ledger, outbox OutboxRepo, txManager pg.TXManager) *Service {
	return &Service{
		orders:      orders,
		commissions: commissions,
		history:     history,
		ledger:      ledger,
		outbox:      outbox,
		txManager:   txManager,
	}
}

// Settlement reports what one confirmed order moved.
type Settlement struct {
	OrderID             int64
	BasePrice           decimal.Decimal
	Commission          decimal.Decimal
	Cashback            decimal.Decimal
	FinalPrice          decimal.Decimal
	BuyerTransactionID  *int64
	SellerTransactionID int64
}

// ConfirmOrder settles one pending order. Rates are read from the commission
// setting active at confirmation time, not at order creation time. The order
// row transitions first so a concurrent confirmation fails fast; any later
// failure inside the transaction (insufficient funds included) rolls the
// transition back and leaves the order pending.
func (s *Service) ConfirmOrder(ctx context.Context, orderID int64) (*Settlement, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.Status != domain.OrderPending {
		return nil, domain.ErrOrderNotPending
	}

	setting, err := s.commissions.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, domain.ErrNoCommissionSetting
	}

	base := order.UnitPrice.Mul(decimal.NewFromInt(order.Quantity))
	breakdown, err := commission.Calculate(base, setting.CustomerCommissionPercent, setting.CashbackPercent)
	if err != nil {
		return nil, err
	}

	result := &Settlement{
		OrderID:    order.ID,
		BasePrice:  base,
		Commission: breakdown.Commission,
		Cashback:   breakdown.Cashback,
		FinalPrice: breakdown.FinalPrice,
	}

	// committed balances per wallet, published to the cache after commit
	var buyerBalance, sellerBalance *decimal.Decimal

	err = s.ledger.Retry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			buyerBalance, sellerBalance = nil, nil
			settled := *order
			settled.TotalAmount = breakdown.FinalPrice
			settled.Commission = breakdown.Commission
			settled.Cashback = breakdown.Cashback
			moved, err := s.orders.MarkCompleted(ctx, &settled)
			if err != nil {
				return err
			}
			if !moved {
				return domain.ErrOrderNotPending
			}

			result.BuyerTransactionID = nil
			if order.PaymentMethod == domain.PaymentMethodWallet {
				debit, err := s.ledger.ApplyDeltaTx(ctx, walletledger.Delta{
					UserID:           order.BuyerID,
					Amount:           breakdown.FinalPrice.Neg(),
					Type:             domain.TypePurchase,
					OrderID:          &order.ID,
					ProductID:        &order.ProductID,
					FromUserID:       &order.BuyerID,
					ToUserID:         &order.SellerID,
					CommissionAmount: breakdown.Commission,
					CashbackAmount:   breakdown.Cashback,
				})
				if err != nil {
					return err
				}
				result.BuyerTransactionID = &debit.TransactionID
				buyerBalance = &debit.NewBalance
			}

			sellerNet := base.Sub(breakdown.Commission)
			credit, err := s.ledger.ApplyDeltaTx(ctx, walletledger.Delta{
				UserID:           order.SellerID,
				Amount:           sellerNet,
				Type:             domain.TypeSale,
				OrderID:          &order.ID,
				ProductID:        &order.ProductID,
				FromUserID:       &order.BuyerID,
				ToUserID:         &order.SellerID,
				CommissionAmount: breakdown.Commission,
			})
			if err != nil {
				return err
			}
			result.SellerTransactionID = credit.TransactionID
			sellerBalance = &credit.NewBalance

			var cashbackTxID int64
			if breakdown.Cashback.IsPositive() {
				cb, err := s.ledger.ApplyDeltaTx(ctx, walletledger.Delta{
					UserID:    order.BuyerID,
					Amount:    breakdown.Cashback,
					Type:      domain.TypeCashback,
					OrderID:   &order.ID,
					ProductID: &order.ProductID,
				})
				if err != nil {
					return err
				}
				cashbackTxID = cb.TransactionID
				buyerBalance = &cb.NewBalance
			}

			if _, err := s.ledger.UpdateAdminTx(ctx, func(aw *domain.AdminWallet) {
				aw.Balance = aw.Balance.Add(breakdown.AdminGain)
				aw.TotalCommissions = aw.TotalCommissions.Add(breakdown.Commission)
				aw.TotalCashbacksPaid = aw.TotalCashbacksPaid.Add(breakdown.Cashback)
			}); err != nil {
				return err
			}

			if _, err := s.history.CreateCommission(ctx, &domain.CommissionHistory{
				OrderID:       order.ID,
				TransactionID: credit.TransactionID,
				SellerID:      order.SellerID,
				Amount:        breakdown.Commission,
			}); err != nil {
				return err
			}
			if breakdown.Cashback.IsPositive() {
				if _, err := s.history.CreateCashback(ctx, &domain.CashbackHistory{
					OrderID:       order.ID,
					TransactionID: cashbackTxID,
					BuyerID:       order.BuyerID,
					Amount:        breakdown.Cashback,
				}); err != nil {
					return err
				}
			}

			payload, _ := json.Marshal(map[string]any{
				"order_id":    order.ID,
				"buyer_id":    order.BuyerID,
				"seller_id":   order.SellerID,
				"base_price":  base,
				"commission":  breakdown.Commission,
				"cashback":    breakdown.Cashback,
				"final_price": breakdown.FinalPrice,
			})
			return s.outbox.Append(ctx, &domain.OutboxEvent{
				ID:          walletledger.NewReference(),
				Aggregate:   "order",
				AggregateID: order.ID,
				EventType:   "order.settled",
				Payload:     payload,
			})
		})
	})
	if err != nil {
		return nil, err
	}
	if buyerBalance != nil {
		s.ledger.RefreshBalance(ctx, order.BuyerID, *buyerBalance)
	}
	if sellerBalance != nil {
		s.ledger.RefreshBalance(ctx, order.SellerID, *sellerBalance)
	}

	zap.L().Info("order settled",
		zap.Int64("orderID", order.ID),
		zap.String("commission", breakdown.Commission.String()),
		zap.String("cashback", breakdown.Cashback.String()))
	return result, nil
}

// SellerCommissions lists the commission rows charged against a seller's sales.
func (s *Service) SellerCommissions(ctx context.Context, sellerID int64) ([]domain.CommissionHistory, error) {
	return s.history.ListCommissionsBySeller(ctx, sellerID)
}
