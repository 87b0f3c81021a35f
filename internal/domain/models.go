package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypePurchase       TransactionType = "purchase"
	TypeSale           TransactionType = "sale"
	TypeWalletRecharge TransactionType = "wallet_recharge"
	TypeWalletCredit   TransactionType = "wallet_credit"
	TypeAdminRecharge  TransactionType = "admin_recharge"
	TypeCommission     TransactionType = "commission"
	TypeCashback       TransactionType = "cashback"
	TypeWithdrawal     TransactionType = "withdrawal"
	TypeRefund         TransactionType = "refund"
	TypeTransferIn     TransactionType = "transfer_in"
	TypeTransferOut    TransactionType = "transfer_out"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusCancelled TransactionStatus = "cancelled"
)

// Terminal reports whether the status admits no further transition.
func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

const PaymentMethodWallet = "wallet"

type Wallet struct {
	ID                int64           `db:"id"`
	UserID            int64           `db:"user_id"`
	Balance           decimal.Decimal `db:"balance"`
	Version           int64           `db:"version"`
	TotalEarned       decimal.Decimal `db:"total_earned"`
	TotalSpent        decimal.Decimal `db:"total_spent"`
	TotalCashback     decimal.Decimal `db:"total_cashback"`
	LastTransactionID *int64          `db:"last_transaction_id"`
}

// AdminWallet is the single-row platform aggregate. available_funds and
// pending_funds are persisted but reserved: no settlement rule mutates them yet.
type AdminWallet struct {
	Balance            decimal.Decimal `db:"balance"`
	AvailableFunds     decimal.Decimal `db:"available_funds"`
	PendingFunds       decimal.Decimal `db:"pending_funds"`
	TotalCommissions   decimal.Decimal `db:"total_commissions"`
	TotalCashbacksPaid decimal.Decimal `db:"total_cashbacks_paid"`
	TotalTransactions  int64           `db:"total_transactions"`
	Version            int64           `db:"version"`
}

// Metadata is the typed extension blob stored as jsonb on a transaction.
// Gateway-specific fields that have no field of their own go into Extra.
type Metadata struct {
	SecurityToken string            `json:"security_token,omitempty"`
	GatewayRef    string            `json:"gateway_ref,omitempty"`
	DescriptionAr string            `json:"description_ar,omitempty"`
	DescriptionEn string            `json:"description_en,omitempty"`
	SourceID      int64             `json:"source_id,omitempty"`
	Extra         map[string]string `json:"extra,omitempty"`
}

type Transaction struct {
	ID                    int64             `db:"id"`
	Reference             string            `db:"reference"`
	ExternalTransactionID *string           `db:"external_transaction_id"`
	UserID                int64             `db:"user_id"`
	FromUserID            *int64            `db:"from_user_id"`
	ToUserID              *int64            `db:"to_user_id"`
	Type                  TransactionType   `db:"type"`
	Amount                decimal.Decimal   `db:"amount"`
	CommissionAmount      decimal.Decimal   `db:"commission_amount"`
	CashbackAmount        decimal.Decimal   `db:"cashback_amount"`
	Status                TransactionStatus `db:"status"`
	OrderID               *int64            `db:"order_id"`
	ProductID             *int64            `db:"product_id"`
	Metadata              Metadata          `db:"metadata"`
	CreatedAt             time.Time         `db:"created_at"`
}

type Order struct {
	ID            int64           `db:"id"`
	BuyerID       int64           `db:"buyer_id"`
	SellerID      int64           `db:"seller_id"`
	ProductID     int64           `db:"product_id"`
	Quantity      int64           `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Commission    decimal.Decimal `db:"commission"`
	Cashback      decimal.Decimal `db:"cashback"`
	Status        OrderStatus     `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	CreatedAt     time.Time       `db:"created_at"`
}

// CommissionSetting rows are versioned by created_at; the latest row wins.
type CommissionSetting struct {
	ID                         int64           `db:"id"`
	CustomerCommissionPercent  decimal.Decimal `db:"customer_commission_percent"`
	CashbackPercent            decimal.Decimal `db:"cashback_percent"`
	SellerWithdrawalFeePercent decimal.Decimal `db:"seller_withdrawal_fee_percent"`
	CreatedAt                  time.Time       `db:"created_at"`
}

type CommissionHistory struct {
	ID            int64           `db:"id"`
	OrderID       int64           `db:"order_id"`
	TransactionID int64           `db:"transaction_id"`
	SellerID      int64           `db:"seller_id"`
	Amount        decimal.Decimal `db:"amount"`
	CreatedAt     time.Time       `db:"created_at"`
}

type CashbackHistory struct {
	ID            int64           `db:"id"`
	OrderID       int64           `db:"order_id"`
	TransactionID int64           `db:"transaction_id"`
	BuyerID       int64           `db:"buyer_id"`
	Amount        decimal.Decimal `db:"amount"`
	CreatedAt     time.Time       `db:"created_at"`
}

// TransactionFilter narrows a per-user transaction listing. Zero values mean
// no constraint; Limit defaults at the repository.
type TransactionFilter struct {
	Type  TransactionType
	From  time.Time
	To    time.Time
	Limit int
}

type OutboxEvent struct {
	ID          string     `db:"id"`
	Aggregate   string     `db:"aggregate"`
	AggregateID int64      `db:"aggregate_id"`
	EventType   string     `db:"event_type"`
	Payload     []byte     `db:"payload"`
	Published   bool       `db:"published"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
}
