package validate

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// IsPositiveAmount reports whether v is a strictly positive currency amount.
func IsPositiveAmount(v decimal.Decimal) bool {
	return v.IsPositive()
}

// IsRate reports whether v is a percentage usable for commission or cashback,
// i.e. within [0, 100).
func IsRate(v decimal.Decimal) bool {
	return !v.IsNegative() && v.LessThan(hundred)
}
