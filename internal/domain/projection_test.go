package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestYearlyProjectionBalances(t *testing.T) {
	y := YearlyProjection{
		RRSPBalance:   decimal.NewFromInt(300000),
		TFSABalance:   decimal.NewFromInt(50000),
		NonRegistered: decimal.NewFromInt(25000),
		RealEstate:    decimal.NewFromInt(600000),
	}
	assert.True(t, y.InvestableBalance().Equal(decimal.NewFromInt(375000)))
	assert.True(t, y.TotalBalance().Equal(decimal.NewFromInt(975000)))
}

func TestBalanceAtRetirement(t *testing.T) {
	p := PlanProjection{
		Input: PlanInput{CurrentAge: 55, RetirementAge: 57},
		Years: []YearlyProjection{
			{Year: 0, Age: 55, RRSPBalance: decimal.NewFromInt(100)},
			{Year: 1, Age: 56, RRSPBalance: decimal.NewFromInt(200)},
			{Year: 2, Age: 57, RRSPBalance: decimal.NewFromInt(300)},
		},
	}
	// Last pre-retirement snapshot is age 56.
	assert.True(t, p.BalanceAtRetirement().Equal(decimal.NewFromInt(200)))
}

func TestBalanceAtRetirementImmediate(t *testing.T) {
	p := PlanProjection{
		Input: PlanInput{
			CurrentAge:    65,
			RetirementAge: 65,
			RRSPBalance:   decimal.NewFromInt(400000),
			TFSABalance:   decimal.NewFromInt(50000),
		},
		Years: []YearlyProjection{{Year: 0, Age: 65}},
	}
	assert.True(t, p.BalanceAtRetirement().Equal(decimal.NewFromInt(450000)))
}

func TestFirstShortfallAge(t *testing.T) {
	p := PlanProjection{
		Years: []YearlyProjection{
			{Age: 70},
			{Age: 71, Warnings: []string{"age 71: insufficient funds, shortfall of $5000"}},
			{Age: 72, Warnings: []string{"age 72: insufficient funds, shortfall of $8000"}},
		},
	}
	assert.Equal(t, 71, p.FirstShortfallAge())

	clean := PlanProjection{Years: []YearlyProjection{{Age: 70}}}
	assert.Equal(t, 0, clean.FirstShortfallAge())
}
