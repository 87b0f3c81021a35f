package dto

import "github.com/shopspring/decimal"

type ConfirmOrderResponseDTO struct {
	OrderID    int64           `json:"order_id" example:"501"`
	BasePrice  decimal.Decimal `json:"base_price" example:"100.00"`
	Commission decimal.Decimal `json:"commission" example:"5.00"`
	Cashback   decimal.Decimal `json:"cashback" example:"1.58"`
	FinalPrice decimal.Decimal `json:"final_price" example:"105.00"`
}
