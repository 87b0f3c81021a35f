package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletOperationRequestDTO struct {
	Operation     string          `json:"operation" example:"admin_transfer"`
	UserID        int64           `json:"user_id" example:"42"`
	Amount        decimal.Decimal `json:"amount" example:"250.00"`
	DescriptionAr string          `json:"description_ar,omitempty"`
	DescriptionEn string          `json:"description_en,omitempty" example:"goodwill credit"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

type WalletOperationResponseDTO struct {
	Amount          decimal.Decimal  `json:"amount" example:"250.00"`
	NewUserBalance  decimal.Decimal  `json:"new_user_balance" example:"750.00"`
	NewAdminBalance *decimal.Decimal `json:"new_admin_balance,omitempty" example:"9750.00"`
}

type RechargeRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"250.00"`
}

type RechargeResponseDTO struct {
	Reference             string `json:"reference" example:"01J8ZC3N9V3Y8K2T0A6QDRWFHM"`
	ExternalTransactionID string `json:"external_transaction_id" example:"gw-55012"`
	PaymentURL            string `json:"payment_url" example:"https://gateway.example/pay/gw-55012"`
}

type BalanceResponseDTO struct {
	UserID        int64           `json:"user_id" example:"42"`
	Balance       decimal.Decimal `json:"balance" example:"500.50"`
	TotalEarned   decimal.Decimal `json:"total_earned" example:"1200.00"`
	TotalSpent    decimal.Decimal `json:"total_spent" example:"700.00"`
	TotalCashback decimal.Decimal `json:"total_cashback" example:"18.25"`
}

type AdminWalletResponseDTO struct {
	Balance            decimal.Decimal `json:"balance" example:"10500.00"`
	AvailableFunds     decimal.Decimal `json:"available_funds" example:"10500.00"`
	PendingFunds       decimal.Decimal `json:"pending_funds" example:"0"`
	TotalCommissions   decimal.Decimal `json:"total_commissions" example:"840.00"`
	TotalCashbacksPaid decimal.Decimal `json:"total_cashbacks_paid" example:"130.75"`
	TotalTransactions  int64           `json:"total_transactions" example:"312"`
}

type TransactionResponseDTO struct {
	ID         int64           `json:"id" example:"1024"`
	Reference  string          `json:"reference" example:"01J8ZC3N9V3Y8K2T0A6QDRWFHM"`
	Type       string          `json:"type" example:"purchase"`
	Amount     decimal.Decimal `json:"amount" example:"-105.00"`
	Status     string          `json:"status" example:"completed"`
	OrderID    *int64          `json:"order_id,omitempty" example:"501"`
	Commission decimal.Decimal `json:"commission" example:"5.00"`
	Cashback   decimal.Decimal `json:"cashback" example:"1.58"`
	CreatedAt  time.Time       `json:"created_at" example:"2026-02-11T16:09:57+03:00"`
}
