package commissionrepo

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

// GetActive returns the current commission configuration: settings rows are
// never updated in place, the newest row wins.
func (r *Repository) GetActive(ctx context.Context) (*domain.CommissionSetting, error) {
	query := `
        SELECT id, customer_commission_percent, cashback_percent, seller_withdrawal_fee_percent, created_at
        FROM commission_settings
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query)
	var setting domain.CommissionSetting
	err := row.Scan(&setting.ID, &setting.CustomerCommissionPercent,
		&setting.CashbackPercent, &setting.SellerWithdrawalFeePercent, &setting.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get commission setting", zap.Error(err))
		return nil, err
	}
	return &setting, nil
}
