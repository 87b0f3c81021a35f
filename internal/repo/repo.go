package repo

import (
	"github.com/souqpay/souqpay/internal/pg"
	adminwalletrepo "github.com/souqpay/souqpay/internal/repo/adminwallet-repo"
	commissionrepo "github.com/souqpay/souqpay/internal/repo/commission-repo"
	historyrepo "github.com/souqpay/souqpay/internal/repo/history-repo"
	orderrepo "github.com/souqpay/souqpay/internal/repo/order-repo"
	outboxrepo "github.com/souqpay/souqpay/internal/repo/outbox-repo"
	transactionrepo "github.com/souqpay/souqpay/internal/repo/transaction-repo"
	walletrepo "github.com/souqpay/souqpay/internal/repo/wallet-repo"
)

type Repositories struct {
	WalletRepo      *walletrepo.Repository
	AdminWalletRepo *adminwalletrepo.Repository
	TransactionRepo *transactionrepo.Repository
	OrderRepo       *orderrepo.Repository
	CommissionRepo  *commissionrepo.Repository
	HistoryRepo     *historyrepo.Repository
	OutboxRepo      *outboxrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		WalletRepo:      walletrepo.New(conn),
		AdminWalletRepo: adminwalletrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		OrderRepo:       orderrepo.New(conn),
		CommissionRepo:  commissionrepo.New(conn),
		HistoryRepo:     historyrepo.New(conn),
		OutboxRepo:      outboxrepo.New(conn),
	}
}
