package calculation

import (
	"testing"

	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnnualCPP(t *testing.T) {
	rules := DefaultRules()
	plan := &domain.PlanInput{
		CPPMonthly:  decimal.NewFromInt(1000),
		CPPStartAge: 65,
	}

	assert.True(t, annualCPP(rules, plan, 64).IsZero())
	assert.True(t, annualCPP(rules, plan, 65).Equal(decimal.NewFromInt(12000)))

	// Early start pays less but starts paying sooner.
	plan.CPPStartAge = 60
	assert.True(t, annualCPP(rules, plan, 60).Equal(decimal.NewFromInt(7680)))
	assert.True(t, annualCPP(rules, plan, 59).IsZero())

	// Unset start age defaults to the normal age.
	plan.CPPStartAge = 0
	assert.True(t, annualCPP(rules, plan, 64).IsZero())
	assert.True(t, annualCPP(rules, plan, 65).Equal(decimal.NewFromInt(12000)))

	// No stated entitlement means no benefit.
	plan.CPPMonthly = decimal.Zero
	assert.True(t, annualCPP(rules, plan, 70).IsZero())
}

func TestAnnualOAS(t *testing.T) {
	rules := DefaultRules()
	plan := &domain.PlanInput{OASStartAge: 65}

	assert.True(t, annualOAS(rules, plan, 64).IsZero())
	assertDecimalNear(t, decimal.NewFromFloat(8560.08), annualOAS(rules, plan, 65))
	assertDecimalNear(t, decimal.NewFromFloat(9416.04), annualOAS(rules, plan, 75))

	// Deferral delays the start without changing the amount.
	plan.OASStartAge = 70
	assert.True(t, annualOAS(rules, plan, 69).IsZero())
	assertDecimalNear(t, decimal.NewFromFloat(8560.08), annualOAS(rules, plan, 70))
}

func TestStreamAnnualAmount(t *testing.T) {
	monthly := decimal.NewFromInt(1000)
	indexing := decimal.NewFromFloat(0.02)
	end := 2032

	tests := []struct {
		name     string
		year     int
		expected decimal.Decimal
	}{
		{"before start", 2029, decimal.Zero},
		{"start year pays unindexed", 2030, decimal.NewFromInt(12000)},
		{"second year indexed once", 2031, decimal.NewFromInt(12240)},
		{"end year still pays", 2032, decimal.NewFromFloat(12484.8)},
		{"year after end pays nothing", 2033, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := streamAnnualAmount(monthly, indexing, 2030, &end, tt.year)
			assertDecimalNear(t, tt.expected, got)
		})
	}

	// A nil end year pays for life.
	got := streamAnnualAmount(monthly, decimal.Zero, 2030, nil, 2080)
	assert.True(t, got.Equal(decimal.NewFromInt(12000)))

	// Negative indexing models a declining stream.
	declining := streamAnnualAmount(monthly, decimal.NewFromFloat(-0.10), 2030, nil, 2031)
	assertDecimalNear(t, decimal.NewFromInt(10800), declining)
}

func TestAnnualPensionIncomeSumsStreams(t *testing.T) {
	end := 2031
	pensions := []domain.PensionIncome{
		{MonthlyAmount: decimal.NewFromInt(800), StartYear: 2030, IndexingRate: decimal.Zero},
		{MonthlyAmount: decimal.NewFromInt(200), StartYear: 2030, IndexingRate: decimal.Zero, EndYear: &end},
	}

	got := annualPensionIncome(pensions, 2030)
	assert.True(t, got.Equal(decimal.NewFromInt(12000)))

	// After the second stream's end year only the first remains.
	got = annualPensionIncome(pensions, 2032)
	assert.True(t, got.Equal(decimal.NewFromInt(9600)))
}
