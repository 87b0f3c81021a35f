package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/souqpay/souqpay/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	unitPrice := decimal.RequireFromString("100.00")
	createdAt := time.Date(2026, 2, 11, 13, 9, 57, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "Existing order is returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{
					"id", "buyer_id", "seller_id", "product_id", "quantity", "unit_price",
					"total_amount", "commission", "cashback", "status", "payment_method", "created_at",
				}).AddRow(
					int64(501), int64(10), int64(20), int64(7), int64(1), unitPrice,
					decimal.Zero, decimal.Zero, decimal.Zero, domain.OrderPending, "wallet", createdAt,
				)
				mock.ExpectQuery(`SELECT .+ FROM orders\s+WHERE id = \$1`).
					WithArgs(int64(501)).
					WillReturnRows(rows)
			},
			result: &domain.Order{
				ID:            501,
				BuyerID:       10,
				SellerID:      20,
				ProductID:     7,
				Quantity:      1,
				UnitPrice:     unitPrice,
				TotalAmount:   decimal.Zero,
				Commission:    decimal.Zero,
				Cashback:      decimal.Zero,
				Status:        domain.OrderPending,
				PaymentMethod: "wallet",
				CreatedAt:     createdAt,
			},
		},
		{
			name: "Unknown order returns nil",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM orders\s+WHERE id = \$1`).
					WithArgs(int64(501)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM orders\s+WHERE id = \$1`).
					WithArgs(int64(501)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), 501)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_MarkCompleted(t *testing.T) {
	repo, mock := NewMock(t)

	order := &domain.Order{
		ID:          501,
		TotalAmount: decimal.RequireFromString("105.00"),
		Commission:  decimal.RequireFromString("5.00"),
		Cashback:    decimal.RequireFromString("1.58"),
	}

	updateQuery := regexp.QuoteMeta(`
			UPDATE orders
			SET status = $1, total_amount = $2, commission = $3, cashback = $4, updated_at = now()
			WHERE id = $5 AND status = 'pending'
		`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		moved     bool
	}{
		{
			name: "Pending order completes",
			mockSetup: func() {
				mock.ExpectExec(updateQuery).
					WithArgs(domain.OrderCompleted, order.TotalAmount, order.Commission, order.Cashback, int64(501)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			moved: true,
		},
		{
			name: "Non-pending order reports no transition",
			mockSetup: func() {
				mock.ExpectExec(updateQuery).
					WithArgs(domain.OrderCompleted, order.TotalAmount, order.Commission, order.Cashback, int64(501)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			moved: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(updateQuery).
					WithArgs(domain.OrderCompleted, order.TotalAmount, order.Commission, order.Cashback, int64(501)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			moved, err := repo.MarkCompleted(context.Background(), order)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.moved, moved)
		})
	}
}
