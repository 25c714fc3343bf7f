package calculation

import (
	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/mapleplan/retirement-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// Contribution split during the accumulation years.
var (
	rrspContributionShare = decimal.NewFromFloat(0.70)
	tfsaContributionShare = decimal.NewFromFloat(0.30)
)

// accountSet tracks the investable balances while a projection runs.
// Balances never go below zero; a withdrawal that cannot be covered is
// reported as unmet.
type accountSet struct {
	rrsp   decimal.Decimal
	tfsa   decimal.Decimal
	nonReg decimal.Decimal
}

func newAccountSet(plan *domain.PlanInput) accountSet {
	return accountSet{
		rrsp:   plan.RRSPBalance,
		tfsa:   plan.TFSABalance,
		nonReg: plan.NonRegistered,
	}
}

// withdrawal records where a year's discretionary withdrawals came from.
type withdrawal struct {
	fromNonReg decimal.Decimal
	fromTFSA   decimal.Decimal
	fromRRSP   decimal.Decimal
	unmet      decimal.Decimal
}

func (w withdrawal) withdrawn() decimal.Decimal {
	return w.fromNonReg.Add(w.fromTFSA).Add(w.fromRRSP)
}

func (w withdrawal) add(o withdrawal) withdrawal {
	return withdrawal{
		fromNonReg: w.fromNonReg.Add(o.fromNonReg),
		fromTFSA:   w.fromTFSA.Add(o.fromTFSA),
		fromRRSP:   w.fromRRSP.Add(o.fromRRSP),
		unmet:      w.unmet.Add(o.unmet),
	}
}

// withdraw covers the amount from non-registered money first, then TFSA,
// then RRSP. Taxable consequences of the RRSP portion are the caller's
// responsibility.
func (a *accountSet) withdraw(amount decimal.Decimal) withdrawal {
	var w withdrawal
	if amount.LessThanOrEqual(decimal.Zero) {
		return w
	}
	w.fromNonReg = decimal.Min(amount, a.nonReg)
	a.nonReg = a.nonReg.Sub(w.fromNonReg)
	amount = amount.Sub(w.fromNonReg)

	w.fromTFSA = decimal.Min(amount, a.tfsa)
	a.tfsa = a.tfsa.Sub(w.fromTFSA)
	amount = amount.Sub(w.fromTFSA)

	w.fromRRSP = decimal.Min(amount, a.rrsp)
	a.rrsp = a.rrsp.Sub(w.fromRRSP)
	w.unmet = amount.Sub(w.fromRRSP)
	return w
}

// contribute adds a year of contributions using the standard split.
func (a *accountSet) contribute(annual decimal.Decimal) {
	a.rrsp = a.rrsp.Add(annual.Mul(rrspContributionShare))
	a.tfsa = a.tfsa.Add(annual.Mul(tfsaContributionShare))
}

// grow applies one year of real returns per account.
func (a *accountSet) grow(plan *domain.PlanInput) {
	a.rrsp = money.Grow(a.rrsp, plan.RRSPRealReturn)
	a.tfsa = money.Grow(a.tfsa, plan.TFSARealReturn)
	a.nonReg = money.Grow(a.nonReg, plan.NonRegRealReturn)
}

func (a *accountSet) total() decimal.Decimal {
	return a.rrsp.Add(a.tfsa).Add(a.nonReg)
}
