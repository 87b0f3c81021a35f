package adminwalletrepo

import (
	"context"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/pg"
	"go.uber.org/zap"
)

// Repository owns the single-row platform aggregate. The row is seeded by the
// migrations, so reads never miss; updates follow the same version-CAS
// protocol as user wallets because the row is hot under load.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context) (*domain.AdminWallet, error) {
	query := `
        SELECT balance, available_funds, pending_funds, total_commissions,
               total_cashbacks_paid, total_transactions, version
        FROM admin_wallet
        WHERE id = 1
    `
	row := r.db.QueryRow(ctx, query)
	var aw domain.AdminWallet
	err := row.Scan(&aw.Balance, &aw.AvailableFunds, &aw.PendingFunds,
		&aw.TotalCommissions, &aw.TotalCashbacksPaid, &aw.TotalTransactions, &aw.Version)
	if err != nil {
		zap.L().Error("failed to get admin wallet", zap.Error(err))
		return nil, err
	}
	return &aw, nil
}

func (r *Repository) UpdateCAS(ctx context.Context, aw *domain.AdminWallet, oldVersion int64) error {
	query := `
		UPDATE admin_wallet
		SET balance = $1, available_funds = $2, pending_funds = $3,
		    total_commissions = $4, total_cashbacks_paid = $5, total_transactions = $6,
		    version = version + 1, updated_at = now()
		WHERE id = 1 AND version = $7
	`
	tag, err := r.db.Exec(ctx, query,
		aw.Balance, aw.AvailableFunds, aw.PendingFunds,
		aw.TotalCommissions, aw.TotalCashbacksPaid, aw.TotalTransactions, oldVersion)
	if err != nil {
		zap.L().Error("failed to update admin wallet", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}
