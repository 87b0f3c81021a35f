package walletrepo

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

func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, version, total_earned, total_spent, total_cashback, last_transaction_id
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.Version,
		&wallet.TotalEarned, &wallet.TotalSpent, &wallet.TotalCashback, &wallet.LastTransactionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Create inserts a zero-balance wallet for the user. Wallets come into
// existence lazily on the first credit.
func (r *Repository) Create(ctx context.Context, userID int64) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance, total_earned, total_spent, total_cashback)
        VALUES ($1, 0, 0, 0, 0)
        RETURNING id, user_id, balance, version, total_earned, total_spent, total_cashback, last_transaction_id
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.Version,
		&wallet.TotalEarned, &wallet.TotalSpent, &wallet.TotalCashback, &wallet.LastTransactionID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// UpdateCAS persists the mutated wallet only if the stored version still
// equals oldVersion, bumping the version by one. A stale version yields
// domain.ErrVersionConflict and the caller re-runs its read-compute-write
// cycle.
func (r *Repository) UpdateCAS(ctx context.Context, wallet *domain.Wallet, oldVersion int64) error {
	query := `
		UPDATE wallets
		SET balance = $1, total_earned = $2, total_spent = $3, total_cashback = $4,
		    last_transaction_id = $5, version = version + 1, updated_at = now()
		WHERE user_id = $6 AND version = $7
	`
	tag, err := r.db.Exec(ctx, query,
		wallet.Balance, wallet.TotalEarned, wallet.TotalSpent, wallet.TotalCashback,
		wallet.LastTransactionID, wallet.UserID, oldVersion)
	if err != nil {
		zap.L().Error("failed to update wallet", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}
