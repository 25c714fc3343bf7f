package calculation

import (
	"fmt"

	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/mapleplan/retirement-planner/pkg/money"
	"github.com/mapleplan/retirement-planner/pkg/timeline"
	"github.com/shopspring/decimal"
)

// ProjectionBaseYear anchors year index 0 for income stream scheduling.
const ProjectionBaseYear = 2025

// Shortfalls below this are rounding noise, not a failed year.
var shortfallTolerance = decimal.NewFromInt(100)

// generateProjection runs the year-by-year simulation from current age
// through life expectancy inclusive. The estimator has already been
// bound to the plan's tax mode and province.
func (e *Engine) generateProjection(plan *domain.PlanInput, estimator TaxEstimator) []domain.YearlyProjection {
	tl := timeline.Timeline{
		CurrentAge:     plan.CurrentAge,
		RetirementAge:  plan.RetirementAge,
		LifeExpectancy: plan.LifeExpectancy,
		BaseYear:       e.BaseYear,
	}
	projection := make([]domain.YearlyProjection, 0, tl.TotalYears())

	acct := newAccountSet(plan)
	annualContribution := money.Annual(plan.MonthlyContribution)

	// Property values are tracked positionally; a sold holding goes to
	// zero and its proceeds land in the non-registered account.
	properties := make([]decimal.Decimal, len(plan.RealEstateHoldings))
	for i, h := range plan.RealEstateHoldings {
		properties[i] = h.Value
	}

	inflationFactor := decimal.NewFromInt(1)

	for year := 0; year < tl.TotalYears(); year++ {
		age := tl.AgeAt(year)
		calYear := tl.CalendarYear(year)
		retired := tl.Retired(year)

		// Accrue first. Growth applies before anything else touches the
		// balances, so mandatory withdrawals are computed on the grown
		// balance and contributions only start compounding next year.
		acct.grow(plan)

		for i, h := range plan.RealEstateHoldings {
			if properties[i].IsZero() {
				continue
			}
			properties[i] = money.Grow(properties[i], h.RealReturn)
			if h.SaleAge > 0 && age >= h.SaleAge {
				acct.nonReg = acct.nonReg.Add(properties[i])
				e.Logger.Infof("age %d: sold %s property for $%s", age, h.PropertyType, properties[i].StringFixed(0))
				properties[i] = decimal.Zero
			}
		}

		snap := domain.YearlyProjection{Year: year, Age: age}

		if !retired {
			snap.Contributions = annualContribution
			acct.contribute(annualContribution)
		} else {
			spending := plan.DesiredAnnualSpending.Mul(inflationFactor)

			// Mandatory RRIF minimum comes out of the account exactly
			// once, before any discretionary withdrawal, and is always
			// taxable.
			rrifMin := e.Rules.RRIFMinimumWithdrawal(acct.rrsp, age)
			acct.rrsp = acct.rrsp.Sub(rrifMin)

			cpp := annualCPP(e.Rules, plan, age)
			pension := annualPensionIncome(plan.Pensions, calYear)
			additional := annualAdditionalIncome(plan.AdditionalIncome, calYear)

			oas := decimal.Zero
			if base := annualOAS(e.Rules, plan, age); base.IsPositive() {
				otherIncome := rrifMin.Add(cpp).Add(pension).Add(additional)
				clawback := e.Rules.OASClawback(otherIncome, age)
				oas = decimal.Max(decimal.Zero, base.Sub(clawback))
			}

			gross := rrifMin.Add(cpp).Add(oas).Add(pension).Add(additional)
			taxable := gross
			tax := estimator.EstimateTax(taxable)

			// Withdraw enough to cover spending plus the tax bill, in
			// priority order.
			need := spending.Add(tax).Sub(gross)
			var wd withdrawal
			if need.IsPositive() {
				wd = acct.withdraw(need)
			}

			// An RRSP top-up is itself taxable. Fold it back in and
			// make one correction withdrawal for the added tax; the
			// final recomputation below keeps the reported figures
			// consistent.
			if wd.fromRRSP.IsPositive() {
				extraTax := estimator.EstimateTax(taxable.Add(wd.fromRRSP)).Sub(tax)
				if extraTax.IsPositive() {
					wd = wd.add(acct.withdraw(extraTax))
				}
			}
			taxable = taxable.Add(wd.fromRRSP)
			tax = estimator.EstimateTax(taxable)

			if wd.unmet.GreaterThan(shortfallTolerance) {
				msg := fmt.Sprintf("age %d: insufficient funds, shortfall of $%s", age, wd.unmet.StringFixed(0))
				snap.Warnings = append(snap.Warnings, msg)
				e.Logger.Warnf("%s", msg)
			}

			snap.RRIFWithdrawal = rrifMin
			snap.CPPIncome = cpp
			snap.OASIncome = oas
			snap.PensionIncome = pension
			snap.AdditionalIncome = additional
			snap.GrossIncome = gross
			snap.TaxableIncome = taxable
			snap.TaxesEstimated = tax
			snap.AdditionalWithdrawal = wd.withdrawn()
			snap.NetIncome = gross.Add(wd.withdrawn()).Sub(tax)
			snap.Spending = spending
		}

		snap.RRSPBalance = acct.rrsp
		snap.TFSABalance = acct.tfsa
		snap.NonRegistered = acct.nonReg
		for _, v := range properties {
			snap.RealEstate = snap.RealEstate.Add(v)
		}
		projection = append(projection, snap)

		inflationFactor = money.Grow(inflationFactor, plan.ExpectedInflation)
	}

	return projection
}
