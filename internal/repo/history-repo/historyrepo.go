package historyrepo

import (
	"context"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/pg"
	"go.uber.org/zap"
)

// Repository appends the durable proof rows financial reporting is built on.
// One commission row and one cashback row per settled order, never updated.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateCommission(ctx context.Context, h *domain.CommissionHistory) (*domain.CommissionHistory, error) {
	query := `
		INSERT INTO commission_history (order_id, transaction_id, seller_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, h.OrderID, h.TransactionID, h.SellerID, h.Amount).Scan(&h.ID)
	if err != nil {
		zap.L().Error("can't save commission history", zap.Error(err))
		return nil, err
	}
	return h, nil
}

func (r *Repository) CreateCashback(ctx context.Context, h *domain.CashbackHistory) (*domain.CashbackHistory, error) {
	query := `
		INSERT INTO cashback_history (order_id, transaction_id, buyer_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, h.OrderID, h.TransactionID, h.BuyerID, h.Amount).Scan(&h.ID)
	if err != nil {
		zap.L().Error("can't save cashback history", zap.Error(err))
		return nil, err
	}
	return h, nil
}

func (r *Repository) ListCommissionsBySeller(ctx context.Context, sellerID int64) ([]domain.CommissionHistory, error) {
	query := `
        SELECT id, order_id, transaction_id, seller_id, amount, created_at
        FROM commission_history
        WHERE seller_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		zap.L().Error("failed to fetch commission history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.CommissionHistory
	for rows.Next() {
		var h domain.CommissionHistory
		err := rows.Scan(&h.ID, &h.OrderID, &h.TransactionID, &h.SellerID, &h.Amount, &h.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan commission history row", zap.Error(err))
			return nil, err
		}
		history = append(history, h)
	}

	return history, nil
}
