package transactionrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/pg"
	"go.uber.org/zap"
)

// Repository is the authoritative audit trail. Rows are append-only: after
// creation only the status column may change, and only away from pending.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const txColumns = `id, reference, external_transaction_id, user_id, from_user_id, to_user_id,
               type, amount, commission_amount, cashback_amount, status, order_id, product_id,
               metadata, created_at`

func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (int64, error) {
	meta, err := json.Marshal(t.Metadata)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `
		INSERT INTO payment_transactions
			(reference, external_transaction_id, user_id, from_user_id, to_user_id,
			 type, amount, commission_amount, cashback_amount, status, order_id, product_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, query,
		t.Reference, t.ExternalTransactionID, t.UserID, t.FromUserID, t.ToUserID,
		t.Type, t.Amount, t.CommissionAmount, t.CashbackAmount, t.Status,
		t.OrderID, t.ProductID, meta,
	).Scan(&t.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return 0, err
	}
	return t.ID, nil
}

func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM payment_transactions
        WHERE external_transaction_id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, externalID))
}

func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM payment_transactions
        WHERE reference = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, reference))
}

// MarkTerminal transitions a pending transaction into the given terminal
// status. It reports false without error when the row already left pending,
// which callers treat as an idempotent replay.
func (r *Repository) MarkTerminal(ctx context.Context, id int64, status domain.TransactionStatus) (bool, error) {
	if !status.Terminal() {
		return false, fmt.Errorf("status %q is not terminal", status)
	}
	query := `
		UPDATE payment_transactions
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, f domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM payment_transactions
        WHERE user_id = $1
          AND ($2 = '' OR type = $2)
          AND ($3::timestamptz IS NULL OR created_at >= $3)
          AND ($4::timestamptz IS NULL OR created_at < $4)
        ORDER BY created_at DESC
        LIMIT $5
    `
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	var from, to *time.Time
	if !f.From.IsZero() {
		from = &f.From
	}
	if !f.To.IsZero() {
		to = &f.To
	}

	rows, err := r.db.Query(ctx, query, userID, string(f.Type), from, to, limit)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		t, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *t)
	}
	return txs, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Transaction, error) {
	t, err := r.scanRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't scan transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) scanRow(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var meta []byte
	err := row.Scan(&t.ID, &t.Reference, &t.ExternalTransactionID, &t.UserID,
		&t.FromUserID, &t.ToUserID, &t.Type, &t.Amount, &t.CommissionAmount,
		&t.CashbackAmount, &t.Status, &t.OrderID, &t.ProductID, &meta, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &t.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}
	return &t, nil
}
