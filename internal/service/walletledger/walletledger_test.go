package walletledger

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/pg"
)

type mocks struct {
	wallets     *MockWalletRepo
	admin       *MockAdminWalletRepo
	txs         *MockTransactionRepo
	outbox      *MockOutboxRepo
	commissions *MockCommissionRepo
	txManager   *pg.MockTXManager
	cache       *MockBalanceCache
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		wallets:     NewMockWalletRepo(ctrl),
		admin:       NewMockAdminWalletRepo(ctrl),
		txs:         NewMockTransactionRepo(ctrl),
		outbox:      NewMockOutboxRepo(ctrl),
		commissions: NewMockCommissionRepo(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
		cache:       NewMockBalanceCache(ctrl),
	}
	service := New(m.wallets, m.admin, m.txs, m.outbox, m.commissions, m.txManager, m.cache, 5)
	return service, m
}

func passthroughBegin(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func TestApplyDelta(t *testing.T) {
	five := decimal.NewFromInt(500)

	tests := []struct {
		name            string
		delta           Delta
		prepareMock     func(m *mocks)
		expectedErr     error
		expectedBalance string
	}{
		{
			name: "Credit creates absent wallet lazily",
			delta: Delta{
				UserID: 7,
				Amount: five,
				Type:   domain.TypeWalletCredit,
			},
			prepareMock: func(m *mocks) {
				passthroughBegin(m)
				m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(nil, nil)
				m.wallets.EXPECT().Create(gomock.Any(), int64(7)).Return(&domain.Wallet{
					UserID:  7,
					Balance: decimal.Zero,
					Version: 0,
				}, nil)
				m.txs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(10), nil)
				m.wallets.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(0)).DoAndReturn(
					func(_ context.Context, w *domain.Wallet, _ int64) error {
						assert.True(t, w.Balance.Equal(five))
						assert.True(t, w.TotalEarned.Equal(five))
						assert.Equal(t, int64(10), *w.LastTransactionID)
						return nil
					})
				m.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				m.cache.EXPECT().SetBalance(gomock.Any(), int64(7), gomock.Any())
			},
			expectedBalance: "500",
		},
		{
			name: "Debit over balance rejected",
			delta: Delta{
				UserID: 1,
				Amount: decimal.NewFromInt(-200),
				Type:   domain.TypeWithdrawal,
			},
			prepareMock: func(m *mocks) {
				passthroughBegin(m)
				m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(&domain.Wallet{
					UserID:  1,
					Balance: decimal.NewFromInt(100),
					Version: 3,
				}, nil)
			},
			expectedErr: domain.ErrInsufficientFunds,
		},
		{
			name: "Overdraft-permitted debit goes below zero",
			delta: Delta{
				UserID:         1,
				Amount:         decimal.NewFromInt(-200),
				Type:           domain.TypeTransferOut,
				AllowOverdraft: true,
			},
			prepareMock: func(m *mocks) {
				passthroughBegin(m)
				m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(&domain.Wallet{
					UserID:  1,
					Balance: decimal.NewFromInt(100),
					Version: 3,
				}, nil)
				m.txs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				m.wallets.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(3)).Return(nil)
				m.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				m.cache.EXPECT().SetBalance(gomock.Any(), int64(1), gomock.Any())
			},
			expectedBalance: "-100",
		},
		{
			name: "Debit against absent wallet",
			delta: Delta{
				UserID: 42,
				Amount: decimal.NewFromInt(-10),
				Type:   domain.TypeWithdrawal,
			},
			prepareMock: func(m *mocks) {
				passthroughBegin(m)
				m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(nil, nil)
			},
			expectedErr: domain.ErrWalletNotFound,
		},
		{
			name:  "Zero amount rejected",
			delta: Delta{UserID: 1, Amount: decimal.Zero, Type: domain.TypeWalletCredit},
			prepareMock: func(m *mocks) {
				passthroughBegin(m)
			},
			expectedErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.ApplyDelta(context.Background(), tt.delta)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, result.NewBalance.String())
			}
		})
	}
}

func TestApplyDeltaVersionConflictRetry(t *testing.T) {
	service, m := NewMock(t)
	passthroughBegin(m)

	wallet := func() *domain.Wallet {
		return &domain.Wallet{UserID: 1, Balance: decimal.NewFromInt(100), Version: 1}
	}

	// first attempt loses the CAS race, second one wins
	m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(1)).DoAndReturn(
		func(context.Context, int64) (*domain.Wallet, error) {
			return wallet(), nil
		}).Times(2)
	m.txs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(20), nil).Times(2)
	gomock.InOrder(
		m.wallets.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(1)).Return(domain.ErrVersionConflict),
		m.wallets.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(1)).Return(nil),
	)
	m.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	m.cache.EXPECT().SetBalance(gomock.Any(), int64(1), gomock.Any())

	result, err := service.ApplyDelta(context.Background(), Delta{
		UserID: 1,
		Amount: decimal.NewFromInt(50),
		Type:   domain.TypeWalletCredit,
	})

	assert.NoError(t, err)
	assert.Equal(t, "150", result.NewBalance.String())
}

func TestApplyDeltaConflictBudgetExhausted(t *testing.T) {
	service, m := NewMock(t)
	passthroughBegin(m)

	m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(&domain.Wallet{
		UserID:  1,
		Balance: decimal.NewFromInt(100),
		Version: 1,
	}, nil).AnyTimes()
	m.txs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(20), nil).AnyTimes()
	m.wallets.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(1)).
		Return(domain.ErrVersionConflict).AnyTimes()

	_, err := service.ApplyDelta(context.Background(), Delta{
		UserID: 1,
		Amount: decimal.NewFromInt(50),
		Type:   domain.TypeWalletCredit,
	})

	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

// Two admin transfers racing on the same wallet: the second one reads a stale
// version, loses the CAS, and retries against the committed state. Both land,
// and the final balance is the initial balance plus both amounts.
func TestOperateInterleavedAdminTransfers(t *testing.T) {
	service, m := NewMock(t)
	passthroughBegin(m)

	wallet := func(balance int64, version int64) *domain.Wallet {
		return &domain.Wallet{UserID: 8, Balance: decimal.NewFromInt(balance), Version: version}
	}

	gomock.InOrder(
		m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(8)).Return(wallet(100, 1), nil),
		m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(8)).Return(wallet(100, 1), nil),
		m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(8)).Return(wallet(150, 2), nil),
	)
	gomock.InOrder(
		m.wallets.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(1)).Return(nil),
		m.wallets.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(1)).Return(domain.ErrVersionConflict),
		m.wallets.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(2)).Return(nil),
	)
	m.txs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(40), nil).Times(3)
	m.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		m.admin.EXPECT().Get(gomock.Any()).Return(&domain.AdminWallet{Balance: decimal.NewFromInt(1000), Version: 9}, nil),
		m.admin.EXPECT().Get(gomock.Any()).Return(&domain.AdminWallet{Balance: decimal.NewFromInt(950), Version: 10}, nil),
	)
	m.admin.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(9)).Return(nil)
	m.admin.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(10)).Return(nil)
	m.cache.EXPECT().SetBalance(gomock.Any(), int64(8), gomock.Any()).Times(2)

	first, err := service.Operate(context.Background(), Operation{
		Operation: OpAdminTransfer,
		UserID:    8,
		Amount:    decimal.NewFromInt(50),
	})
	assert.NoError(t, err)
	assert.Equal(t, "150", first.NewUserBalance.String())

	second, err := service.Operate(context.Background(), Operation{
		Operation: OpAdminTransfer,
		UserID:    8,
		Amount:    decimal.NewFromInt(70),
	})
	assert.NoError(t, err)
	assert.Equal(t, "220", second.NewUserBalance.String())
}

func TestRefreshBalance(t *testing.T) {
	service, m := NewMock(t)
	committed := decimal.RequireFromString("120.50")
	m.cache.EXPECT().SetBalance(gomock.Any(), int64(9), committed)

	service.RefreshBalance(context.Background(), 9, committed)
}

func TestOperateAdminTransfer(t *testing.T) {
	service, m := NewMock(t)
	passthroughBegin(m)

	amount := decimal.NewFromInt(300)

	m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(5)).Return(&domain.Wallet{
		UserID:  5,
		Balance: decimal.NewFromInt(50),
		Version: 2,
	}, nil)
	m.txs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *domain.Transaction) (int64, error) {
			assert.Equal(t, domain.TypeAdminRecharge, tx.Type)
			return int64(30), nil
		})
	m.wallets.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(2)).Return(nil)
	m.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	m.admin.EXPECT().Get(gomock.Any()).Return(&domain.AdminWallet{
		Balance: decimal.NewFromInt(1000),
		Version: 9,
	}, nil)
	m.admin.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(9)).DoAndReturn(
		func(_ context.Context, aw *domain.AdminWallet, _ int64) error {
			assert.Equal(t, "700", aw.Balance.String())
			assert.Equal(t, int64(1), aw.TotalTransactions)
			return nil
		})
	m.cache.EXPECT().SetBalance(gomock.Any(), int64(5), gomock.Any())

	result, err := service.Operate(context.Background(), Operation{
		Operation: OpAdminTransfer,
		UserID:    5,
		Amount:    amount,
	})

	assert.NoError(t, err)
	assert.Equal(t, "350", result.NewUserBalance.String())
	assert.Equal(t, "700", result.NewAdminBalance.String())
}

func TestOperateWithdrawalAppliesFee(t *testing.T) {
	service, m := NewMock(t)
	passthroughBegin(m)

	m.commissions.EXPECT().GetActive(gomock.Any()).Return(&domain.CommissionSetting{
		SellerWithdrawalFeePercent: decimal.NewFromFloat(2.5),
	}, nil)
	m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(3)).Return(&domain.Wallet{
		UserID:  3,
		Balance: decimal.NewFromInt(500),
		Version: 1,
	}, nil)
	m.txs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *domain.Transaction) (int64, error) {
			assert.Equal(t, domain.TypeWithdrawal, tx.Type)
			assert.Equal(t, "5", tx.CommissionAmount.String())
			return int64(31), nil
		})
	m.wallets.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(1)).Return(nil)
	m.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	m.admin.EXPECT().Get(gomock.Any()).Return(&domain.AdminWallet{Version: 4}, nil)
	m.admin.EXPECT().UpdateCAS(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(
		func(_ context.Context, aw *domain.AdminWallet, _ int64) error {
			assert.Equal(t, "5", aw.TotalCommissions.String())
			return nil
		})
	m.cache.EXPECT().SetBalance(gomock.Any(), int64(3), gomock.Any())

	result, err := service.Operate(context.Background(), Operation{
		Operation: OpWithdrawal,
		UserID:    3,
		Amount:    decimal.NewFromInt(200),
	})

	assert.NoError(t, err)
	assert.Equal(t, "300", result.NewUserBalance.String())
}

func TestOperateValidation(t *testing.T) {
	tests := []struct {
		name        string
		op          Operation
		expectedErr error
	}{
		{
			name:        "Unknown operation",
			op:          Operation{Operation: "mystery", UserID: 1, Amount: decimal.NewFromInt(5)},
			expectedErr: domain.ErrUnknownOperation,
		},
		{
			name:        "Recharge requires positive amount",
			op:          Operation{Operation: OpRecharge, UserID: 1, Amount: decimal.NewFromInt(-5)},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:        "Withdrawal requires positive amount",
			op:          Operation{Operation: OpWithdrawal, UserID: 1, Amount: decimal.Zero},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:        "Admin transfer rejects zero",
			op:          Operation{Operation: OpAdminTransfer, UserID: 1, Amount: decimal.Zero},
			expectedErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := NewMock(t)
			result, err := service.Operate(context.Background(), tt.op)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, result)
		})
	}
}

func TestGetBalance(t *testing.T) {
	t.Run("Cache hit skips the database", func(t *testing.T) {
		service, m := NewMock(t)
		m.cache.EXPECT().GetBalance(gomock.Any(), int64(1)).Return(decimal.NewFromInt(75), true)

		wallet, err := service.GetBalance(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "75", wallet.Balance.String())
	})

	t.Run("Cache miss falls through and refreshes", func(t *testing.T) {
		service, m := NewMock(t)
		m.cache.EXPECT().GetBalance(gomock.Any(), int64(1)).Return(decimal.Zero, false)
		m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(&domain.Wallet{
			UserID:  1,
			Balance: decimal.NewFromInt(80),
		}, nil)
		m.cache.EXPECT().SetBalance(gomock.Any(), int64(1), gomock.Any())

		wallet, err := service.GetBalance(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "80", wallet.Balance.String())
	})

	t.Run("Unknown wallet", func(t *testing.T) {
		service, m := NewMock(t)
		m.cache.EXPECT().GetBalance(gomock.Any(), int64(99)).Return(decimal.Zero, false)
		m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(99)).Return(nil, nil)

		wallet, err := service.GetBalance(context.Background(), 99)

		assert.ErrorIs(t, err, domain.ErrWalletNotFound)
		assert.Nil(t, wallet)
	})

	t.Run("Database error", func(t *testing.T) {
		service, m := NewMock(t)
		m.cache.EXPECT().GetBalance(gomock.Any(), int64(1)).Return(decimal.Zero, false)
		m.wallets.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

		_, err := service.GetBalance(context.Background(), 1)

		assert.Error(t, err)
	})
}
