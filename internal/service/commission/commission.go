package commission

import (
	"github.com/shopspring/decimal"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/pkg/validate"
)

var hundred = decimal.NewFromInt(100)

// Breakdown is the money split for one priced sale.
type Breakdown struct {
	Commission decimal.Decimal
	FinalPrice decimal.Decimal
	Cashback   decimal.Decimal
	AdminGain  decimal.Decimal
}

// Calculate computes commission, final price, cashback and the platform gain
// for a base price and the configured percentage rates.
//
// Amounts are rounded to 2 decimal places, half away from zero. The rounding
// happens exactly twice (commission, cashback); every downstream figure is a
// sum or difference of already rounded terms, so reports reconcile exactly.
func Calculate(basePrice, commissionRate, cashbackRate decimal.Decimal) (*Breakdown, error) {
	if !validate.IsPositiveAmount(basePrice) {
		return nil, domain.ErrInvalidAmount
	}
	if !validate.IsRate(commissionRate) || !validate.IsRate(cashbackRate) {
		return nil, domain.ErrInvalidRate
	}

	commission := basePrice.Mul(commissionRate).Div(hundred).Round(2)
	finalPrice := basePrice.Add(commission)
	cashback := finalPrice.Mul(cashbackRate).Div(hundred).Round(2)

	return &Breakdown{
		Commission: commission,
		FinalPrice: finalPrice,
		Cashback:   cashback,
		AdminGain:  commission.Sub(cashback),
	}, nil
}

// Fee applies a flat percentage to an amount, rounded the same way. Used for
// the seller withdrawal fee.
func Fee(amount, feeRate decimal.Decimal) (decimal.Decimal, error) {
	if !validate.IsPositiveAmount(amount) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	if !validate.IsRate(feeRate) {
		return decimal.Zero, domain.ErrInvalidRate
	}
	return amount.Mul(feeRate).Div(hundred).Round(2), nil
}
