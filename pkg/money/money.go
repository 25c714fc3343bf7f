// Package money provides the monetary arithmetic helpers shared by the
// projection engine and its output formatters. All amounts are
// shopspring decimals; floats never enter the calculation path.
package money

import (
	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// Annual converts a monthly amount to annual.
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// Monthly converts an annual amount to monthly.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// Grow applies one period of compound growth at the given rate.
func Grow(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(one.Add(rate))
}

// GrowthFactor returns (1+rate)^periods.
func GrowthFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 || rate.IsZero() {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(periods)))
}

// Round rounds to cents using banker's rounding.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Clamp floors an amount at zero.
func Clamp(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
