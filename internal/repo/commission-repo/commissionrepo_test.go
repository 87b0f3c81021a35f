package commissionrepo

import (
	"context"
	"errors"
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

func TestRepository_GetActive(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	commission := decimal.RequireFromString("5")
	cashback := decimal.RequireFromString("1.5")
	fee := decimal.RequireFromString("2")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.CommissionSetting
	}{
		{
			name: "Newest setting wins",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{
					"id", "customer_commission_percent", "cashback_percent", "seller_withdrawal_fee_percent", "created_at",
				}).AddRow(int64(3), commission, cashback, fee, createdAt)
				mock.ExpectQuery(`SELECT .+ FROM commission_settings\s+ORDER BY created_at DESC\s+LIMIT 1`).
					WillReturnRows(rows)
			},
			result: &domain.CommissionSetting{
				ID:                         3,
				CustomerCommissionPercent:  commission,
				CashbackPercent:            cashback,
				SellerWithdrawalFeePercent: fee,
				CreatedAt:                  createdAt,
			},
		},
		{
			name: "No settings returns nil",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM commission_settings\s+ORDER BY created_at DESC\s+LIMIT 1`).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM commission_settings\s+ORDER BY created_at DESC\s+LIMIT 1`).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetActive(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}
