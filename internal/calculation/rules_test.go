package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRRIFMinimumFactor(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name     string
		age      int
		expected decimal.Decimal
	}{
		{"age 65 uses 1/(90-age)", 65, decimal.NewFromInt(1).Div(decimal.NewFromInt(25))},
		{"age 70 uses 1/(90-age)", 70, decimal.NewFromInt(1).Div(decimal.NewFromInt(20))},
		{"age 71 uses prescribed table", 71, decimal.NewFromFloat(0.0528)},
		{"age 72 uses prescribed table", 72, decimal.NewFromFloat(0.0540)},
		{"age 94 uses prescribed table", 94, decimal.NewFromFloat(0.2000)},
		{"age 95 uses ceiling", 95, decimal.NewFromFloat(0.20)},
		{"age 99 uses ceiling", 99, decimal.NewFromFloat(0.20)},
		{"age 100 withdraws everything", 100, decimal.NewFromInt(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.RRIFMinimumFactor(tt.age)
			assert.True(t, got.Equal(tt.expected), "factor at %d: got %s want %s", tt.age, got, tt.expected)
		})
	}
}

func TestRRIFMinimumWithdrawal(t *testing.T) {
	rules := DefaultRules()
	balance := decimal.NewFromInt(100000)

	// Nothing is mandatory before the minimum withdrawal age, even in
	// the conversion year.
	assert.True(t, rules.RRIFMinimumWithdrawal(balance, 71).IsZero())

	got := rules.RRIFMinimumWithdrawal(balance, 74)
	assert.True(t, got.Equal(decimal.NewFromInt(5670)), "got %s", got)

	assert.True(t, rules.RRIFMinimumWithdrawal(decimal.Zero, 80).IsZero())
	assert.True(t, rules.RRIFMinimumWithdrawal(balance, 100).Equal(balance))
}

func TestAdjustCPP(t *testing.T) {
	rules := DefaultRules()
	base := decimal.NewFromInt(1000)

	tests := []struct {
		name     string
		startAge int
		expected decimal.Decimal
	}{
		{"at 65 unchanged", 65, decimal.NewFromInt(1000)},
		{"at 60 reduced 36%", 60, decimal.NewFromInt(640)},
		{"at 63 reduced 14.4%", 63, decimal.NewFromInt(856)},
		{"at 70 increased 42%", 70, decimal.NewFromInt(1420)},
		{"at 67 increased 16.8%", 67, decimal.NewFromInt(1168)},
		{"below window clamps to 60", 55, decimal.NewFromInt(640)},
		{"above window clamps to 70", 75, decimal.NewFromInt(1420)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.AdjustCPP(base, tt.startAge)
			assert.True(t, got.Equal(tt.expected), "got %s want %s", got, tt.expected)
		})
	}
}

func TestOASMonthly(t *testing.T) {
	rules := DefaultRules()
	assert.True(t, rules.OASMonthly(64).IsZero())
	assert.True(t, rules.OASMonthly(65).Equal(decimal.NewFromFloat(713.34)))
	assert.True(t, rules.OASMonthly(74).Equal(decimal.NewFromFloat(713.34)))
	assert.True(t, rules.OASMonthly(75).Equal(decimal.NewFromFloat(784.67)))
}

func TestOASClawback(t *testing.T) {
	rules := DefaultRules()

	assert.True(t, rules.OASClawback(decimal.NewFromInt(80000), 70).IsZero())
	assert.True(t, rules.OASClawback(decimal.NewFromInt(90997), 70).IsZero())

	// $9,003 over the threshold at 15%.
	got := rules.OASClawback(decimal.NewFromInt(100000), 70)
	assert.True(t, got.Equal(decimal.NewFromFloat(1350.45)), "got %s", got)

	// Clawback never exceeds the annual entitlement.
	huge := rules.OASClawback(decimal.NewFromInt(500000), 70)
	assert.True(t, huge.Equal(decimal.NewFromFloat(713.34).Mul(decimal.NewFromInt(12))), "got %s", huge)
}
