package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
        SELECT id, buyer_id, seller_id, product_id, quantity, unit_price, total_amount,
               commission, cashback, status, payment_method, created_at
        FROM orders
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var order domain.Order
	err := row.Scan(&order.ID, &order.BuyerID, &order.SellerID, &order.ProductID,
		&order.Quantity, &order.UnitPrice, &order.TotalAmount, &order.Commission,
		&order.Cashback, &order.Status, &order.PaymentMethod, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// MarkCompleted settles a pending order, recording the amounts the settlement
// actually applied. It reports false when the order already left pending.
func (r *Repository) MarkCompleted(ctx context.Context, order *domain.Order) (bool, error) {
	query := `
		UPDATE orders
		SET status = $1, total_amount = $2, commission = $3, cashback = $4, updated_at = now()
		WHERE id = $5 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query,
		domain.OrderCompleted, order.TotalAmount, order.Commission, order.Cashback, order.ID)
	if err != nil {
		zap.L().Error("can't update order", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
