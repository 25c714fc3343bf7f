package calculation

import (
	"testing"

	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testAccounts(rrsp, tfsa, nonReg int64) accountSet {
	return accountSet{
		rrsp:   decimal.NewFromInt(rrsp),
		tfsa:   decimal.NewFromInt(tfsa),
		nonReg: decimal.NewFromInt(nonReg),
	}
}

func TestWithdrawPriorityOrder(t *testing.T) {
	cases := []struct {
		name       string
		accounts   accountSet
		amount     int64
		fromNonReg int64
		fromTFSA   int64
		fromRRSP   int64
		unmet      int64
	}{
		{"covered by non-registered", testAccounts(100, 100, 100), 50, 50, 0, 0, 0},
		{"spills into tfsa", testAccounts(100, 100, 60), 100, 60, 40, 0, 0},
		{"spills into rrsp", testAccounts(100, 30, 60), 150, 60, 30, 60, 0},
		{"exhausts everything", testAccounts(100, 30, 60), 250, 60, 30, 100, 60},
		{"zero amount", testAccounts(100, 100, 100), 0, 0, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := tc.accounts.withdraw(decimal.NewFromInt(tc.amount))
			assert.True(t, w.fromNonReg.Equal(decimal.NewFromInt(tc.fromNonReg)), "fromNonReg=%s", w.fromNonReg)
			assert.True(t, w.fromTFSA.Equal(decimal.NewFromInt(tc.fromTFSA)), "fromTFSA=%s", w.fromTFSA)
			assert.True(t, w.fromRRSP.Equal(decimal.NewFromInt(tc.fromRRSP)), "fromRRSP=%s", w.fromRRSP)
			assert.True(t, w.unmet.Equal(decimal.NewFromInt(tc.unmet)), "unmet=%s", w.unmet)
		})
	}
}

func TestWithdrawNeverDrivesBalancesNegative(t *testing.T) {
	a := testAccounts(100, 30, 60)
	a.withdraw(decimal.NewFromInt(1000))
	assert.True(t, a.rrsp.IsZero())
	assert.True(t, a.tfsa.IsZero())
	assert.True(t, a.nonReg.IsZero())
}

func TestContributeSplitsSeventyThirty(t *testing.T) {
	a := testAccounts(0, 0, 0)
	a.contribute(decimal.NewFromInt(18000))
	assert.True(t, a.rrsp.Equal(decimal.NewFromInt(12600)), "rrsp=%s", a.rrsp)
	assert.True(t, a.tfsa.Equal(decimal.NewFromInt(5400)), "tfsa=%s", a.tfsa)
	assert.True(t, a.nonReg.IsZero())
}

func TestGrowAppliesPerAccountReturns(t *testing.T) {
	a := testAccounts(1000, 1000, 1000)
	plan := &domain.PlanInput{
		RRSPRealReturn:   decimal.NewFromFloat(0.05),
		TFSARealReturn:   decimal.NewFromFloat(0.03),
		NonRegRealReturn: decimal.Zero,
	}
	a.grow(plan)
	assert.True(t, a.rrsp.Equal(decimal.NewFromInt(1050)), "rrsp=%s", a.rrsp)
	assert.True(t, a.tfsa.Equal(decimal.NewFromInt(1030)), "tfsa=%s", a.tfsa)
	assert.True(t, a.nonReg.Equal(decimal.NewFromInt(1000)), "nonReg=%s", a.nonReg)
}
