package calculation

import (
	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/mapleplan/retirement-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// annualCPP returns the CPP benefit paid during the year the holder is
// the given age. The stated monthly amount is the age-65 entitlement;
// starting early or late scales it by the prescribed monthly rates.
func annualCPP(rules *RetirementRules, plan *domain.PlanInput, age int) decimal.Decimal {
	if plan.CPPMonthly.IsZero() {
		return decimal.Zero
	}
	startAge := plan.CPPStartAge
	if startAge == 0 {
		startAge = rules.CPPNormalAge
	}
	if age < startAge {
		return decimal.Zero
	}
	return money.Annual(rules.AdjustCPP(plan.CPPMonthly, startAge))
}

// annualOAS returns the OAS benefit for the year at the given age,
// before clawback. Deferral past 65 delays the start without changing
// the monthly amount.
func annualOAS(rules *RetirementRules, plan *domain.PlanInput, age int) decimal.Decimal {
	startAge := plan.OASStartAge
	if startAge < rules.OASEarliestAge {
		startAge = rules.OASEarliestAge
	}
	if age < startAge {
		return decimal.Zero
	}
	return money.Annual(rules.OASMonthly(age))
}

// streamAnnualAmount values an indexed income stream for a calendar
// year. The stream pays monthly*12 in its start year and compounds by
// the indexing rate each year after. The end year is inclusive; nil
// means the stream pays for life.
func streamAnnualAmount(monthly, indexingRate decimal.Decimal, startYear int, endYear *int, year int) decimal.Decimal {
	if year < startYear {
		return decimal.Zero
	}
	if endYear != nil && year > *endYear {
		return decimal.Zero
	}
	annual := money.Annual(monthly)
	if elapsed := year - startYear; elapsed > 0 {
		annual = annual.Mul(money.GrowthFactor(indexingRate, elapsed))
	}
	return annual
}

// annualPensionIncome sums all pension streams active in a calendar year.
func annualPensionIncome(pensions []domain.PensionIncome, year int) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pensions {
		total = total.Add(streamAnnualAmount(p.MonthlyAmount, p.IndexingRate, p.StartYear, p.EndYear, year))
	}
	return total
}

// annualAdditionalIncome sums all non-pension streams active in a
// calendar year.
func annualAdditionalIncome(streams []domain.AdditionalIncome, year int) decimal.Decimal {
	total := decimal.Zero
	for _, s := range streams {
		total = total.Add(streamAnnualAmount(s.MonthlyAmount, s.IndexingRate, s.StartYear, s.EndYear, year))
	}
	return total
}
