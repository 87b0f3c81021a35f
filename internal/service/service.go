package service

import (
	"github.com/souqpay/souqpay/internal/pg"
	"github.com/souqpay/souqpay/internal/repo"
	"github.com/souqpay/souqpay/internal/service/settlement"
	"github.com/souqpay/souqpay/internal/service/walletledger"
	"github.com/souqpay/souqpay/internal/service/webhook"
	pkgauth "github.com/souqpay/souqpay/pkg/auth"
)

type Services struct {
	Ledger     *walletledger.Service
	Webhook    *webhook.Service
	Settlement *settlement.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cache walletledger.BalanceCache,
	gw webhook.Gateway, maxRetries int) *Services {
	ledger := walletledger.New(repo.WalletRepo, repo.AdminWalletRepo, repo.TransactionRepo,
		repo.OutboxRepo, repo.CommissionRepo, txManager, cache, maxRetries)
	webhookService := webhook.New(repo.TransactionRepo, ledger, repo.OutboxRepo, gw,
		&pkgauth.TokenHasher{}, txManager)
	settlementService := settlement.New(repo.OrderRepo, repo.CommissionRepo, repo.HistoryRepo,
		ledger, repo.OutboxRepo, txManager)

	return &Services{
		Ledger:     ledger,
		Webhook:    webhookService,
		Settlement: settlementService,
	}
}
