package calculation

import (
	"github.com/shopspring/decimal"
)

// RetirementRules holds the regulatory constants the engine depends on:
// RRIF conversion and minimum withdrawal schedule, CPP timing
// adjustments, and OAS amounts. Values are for the 2024 benefit year and
// are injected so tests can pin them and future updates stay in one
// place.
type RetirementRules struct {
	// RRIF conversion. The RRSP must convert by the end of the
	// ConversionAge year; mandatory minimums begin at MinWithdrawalAge.
	RRIFConversionAge    int
	RRIFMinWithdrawalAge int

	// Prescribed minimum withdrawal factors by age. Ages below the
	// table's range use 1/(90-age); ages above it use FactorCeiling.
	RRIFFactors       map[int]decimal.Decimal
	RRIFFactorCeiling decimal.Decimal

	// CPP timing. Starting before NormalAge reduces the benefit by
	// EarlyReductionRate per month; starting after increases it by
	// LateIncreaseRate per month, capped at LateIncreaseMaxMonths.
	CPPNormalAge             int
	CPPEarliestAge           int
	CPPLatestAge             int
	CPPEarlyReductionRate    decimal.Decimal
	CPPLateIncreaseRate      decimal.Decimal
	CPPLateIncreaseMaxMonths int

	// OAS monthly maximums and the income-tested clawback.
	OASMonthly65To74     decimal.Decimal
	OASMonthly75Plus     decimal.Decimal
	OASEarliestAge       int
	OASClawbackThreshold decimal.Decimal
	OASClawbackRate      decimal.Decimal
}

// DefaultRules returns the 2024 rule set.
func DefaultRules() *RetirementRules {
	return &RetirementRules{
		RRIFConversionAge:    71,
		RRIFMinWithdrawalAge: 72,
		RRIFFactors: map[int]decimal.Decimal{
			71: decimal.NewFromFloat(0.0528),
			72: decimal.NewFromFloat(0.0540),
			73: decimal.NewFromFloat(0.0553),
			74: decimal.NewFromFloat(0.0567),
			75: decimal.NewFromFloat(0.0582),
			76: decimal.NewFromFloat(0.0598),
			77: decimal.NewFromFloat(0.0617),
			78: decimal.NewFromFloat(0.0636),
			79: decimal.NewFromFloat(0.0658),
			80: decimal.NewFromFloat(0.0685),
			81: decimal.NewFromFloat(0.0718),
			82: decimal.NewFromFloat(0.0757),
			83: decimal.NewFromFloat(0.0804),
			84: decimal.NewFromFloat(0.0863),
			85: decimal.NewFromFloat(0.0938),
			86: decimal.NewFromFloat(0.1033),
			87: decimal.NewFromFloat(0.1157),
			88: decimal.NewFromFloat(0.1330),
			89: decimal.NewFromFloat(0.1533),
			90: decimal.NewFromFloat(0.1742),
			91: decimal.NewFromFloat(0.1964),
			92: decimal.NewFromFloat(0.2000),
			93: decimal.NewFromFloat(0.2000),
			94: decimal.NewFromFloat(0.2000),
		},
		RRIFFactorCeiling: decimal.NewFromFloat(0.20),

		CPPNormalAge:             65,
		CPPEarliestAge:           60,
		CPPLatestAge:             70,
		CPPEarlyReductionRate:    decimal.NewFromFloat(0.006),
		CPPLateIncreaseRate:      decimal.NewFromFloat(0.007),
		CPPLateIncreaseMaxMonths: 60,

		OASMonthly65To74:     decimal.NewFromFloat(713.34),
		OASMonthly75Plus:     decimal.NewFromFloat(784.67),
		OASEarliestAge:       65,
		OASClawbackThreshold: decimal.NewFromInt(90997),
		OASClawbackRate:      decimal.NewFromFloat(0.15),
	}
}

// RRIFMinimumFactor returns the prescribed minimum withdrawal factor for
// an age at the beginning of the year. Below the prescribed table the
// factor is 1/(90-age); at 95 and beyond it is the ceiling; at 100 the
// entire balance must come out.
func (r *RetirementRules) RRIFMinimumFactor(age int) decimal.Decimal {
	if age >= 100 {
		return decimal.NewFromInt(1)
	}
	if f, ok := r.RRIFFactors[age]; ok {
		return f
	}
	if age >= 95 {
		return r.RRIFFactorCeiling
	}
	if age <= 70 {
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(90 - age)))
	}
	return r.RRIFFactorCeiling
}

// RRIFMinimumWithdrawal computes the mandatory withdrawal for a balance
// at the beginning of the year. Zero before the minimum withdrawal age.
func (r *RetirementRules) RRIFMinimumWithdrawal(balance decimal.Decimal, age int) decimal.Decimal {
	if age < r.RRIFMinWithdrawalAge || !balance.IsPositive() {
		return decimal.Zero
	}
	return balance.Mul(r.RRIFMinimumFactor(age))
}

// AdjustCPP scales the age-65 CPP entitlement for an early or late start.
// Start ages outside the 60 to 70 window are clamped to it.
func (r *RetirementRules) AdjustCPP(baseMonthly decimal.Decimal, startAge int) decimal.Decimal {
	if startAge < r.CPPEarliestAge {
		startAge = r.CPPEarliestAge
	}
	if startAge > r.CPPLatestAge {
		startAge = r.CPPLatestAge
	}
	one := decimal.NewFromInt(1)
	switch {
	case startAge < r.CPPNormalAge:
		months := decimal.NewFromInt(int64((r.CPPNormalAge - startAge) * 12))
		return baseMonthly.Mul(one.Sub(months.Mul(r.CPPEarlyReductionRate)))
	case startAge > r.CPPNormalAge:
		months := (startAge - r.CPPNormalAge) * 12
		if months > r.CPPLateIncreaseMaxMonths {
			months = r.CPPLateIncreaseMaxMonths
		}
		boost := decimal.NewFromInt(int64(months)).Mul(r.CPPLateIncreaseRate)
		return baseMonthly.Mul(one.Add(boost))
	default:
		return baseMonthly
	}
}

// OASMonthly returns the monthly OAS entitlement at a given age, before
// any clawback. Zero below the earliest age.
func (r *RetirementRules) OASMonthly(age int) decimal.Decimal {
	switch {
	case age < r.OASEarliestAge:
		return decimal.Zero
	case age >= 75:
		return r.OASMonthly75Plus
	default:
		return r.OASMonthly65To74
	}
}

// OASClawback returns the annual OAS recovery tax for a given net income,
// capped at the full annual OAS entitlement for the age.
func (r *RetirementRules) OASClawback(annualIncome decimal.Decimal, age int) decimal.Decimal {
	if annualIncome.LessThanOrEqual(r.OASClawbackThreshold) {
		return decimal.Zero
	}
	annualOAS := r.OASMonthly(age).Mul(decimal.NewFromInt(12))
	clawback := annualIncome.Sub(r.OASClawbackThreshold).Mul(r.OASClawbackRate)
	return decimal.Min(clawback, annualOAS)
}
