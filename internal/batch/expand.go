// Package batch expands ranged plan parameters into a factorial set of
// scenarios and runs them concurrently through the projection engine.
package batch

import (
	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// rangedField binds one RangeField to the plan field it populates.
type rangedField struct {
	name  string
	field domain.RangeField
	set   func(*domain.PlanInput, decimal.Decimal)
}

func rangedFields(b *domain.BatchInput) []rangedField {
	return []rangedField{
		{"current_age", b.CurrentAge, func(p *domain.PlanInput, v decimal.Decimal) { p.CurrentAge = int(v.IntPart()) }},
		{"retirement_age", b.RetirementAge, func(p *domain.PlanInput, v decimal.Decimal) { p.RetirementAge = int(v.IntPart()) }},
		{"life_expectancy", b.LifeExpectancy, func(p *domain.PlanInput, v decimal.Decimal) { p.LifeExpectancy = int(v.IntPart()) }},
		{"rrsp_balance", b.RRSPBalance, func(p *domain.PlanInput, v decimal.Decimal) { p.RRSPBalance = v }},
		{"tfsa_balance", b.TFSABalance, func(p *domain.PlanInput, v decimal.Decimal) { p.TFSABalance = v }},
		{"non_registered", b.NonRegistered, func(p *domain.PlanInput, v decimal.Decimal) { p.NonRegistered = v }},
		{"monthly_contribution", b.MonthlyContribution, func(p *domain.PlanInput, v decimal.Decimal) { p.MonthlyContribution = v }},
		{"desired_annual_spending", b.DesiredAnnualSpending, func(p *domain.PlanInput, v decimal.Decimal) { p.DesiredAnnualSpending = v }},
		{"cpp_start_age", b.CPPStartAge, func(p *domain.PlanInput, v decimal.Decimal) { p.CPPStartAge = int(v.IntPart()) }},
		{"rrsp_real_return", b.RRSPRealReturn, func(p *domain.PlanInput, v decimal.Decimal) { p.RRSPRealReturn = v }},
		{"tfsa_real_return", b.TFSARealReturn, func(p *domain.PlanInput, v decimal.Decimal) { p.TFSARealReturn = v }},
		{"non_reg_real_return", b.NonRegRealReturn, func(p *domain.PlanInput, v decimal.Decimal) { p.NonRegRealReturn = v }},
		{"expected_inflation", b.ExpectedInflation, func(p *domain.PlanInput, v decimal.Decimal) { p.ExpectedInflation = v }},
	}
}

// Expand produces one PlanInput per corner of the ranged parameter
// space. Scenario ordering is deterministic: the first varying field in
// declaration order is the lowest bit of the scenario index, with bit 0
// selecting the minimum and bit 1 the maximum.
//
// Capacity limits are enforced here, before any scenario runs.
func Expand(b *domain.BatchInput) ([]domain.PlanInput, error) {
	fields := rangedFields(b)

	varying := make([]rangedField, 0, len(fields))
	for _, f := range fields {
		if f.field.Varies() {
			varying = append(varying, f)
		}
	}
	if len(varying) > domain.MaxVariableFields {
		return nil, &domain.CapacityError{What: "variable field count", Count: len(varying), Limit: domain.MaxVariableFields}
	}
	count := 1 << len(varying)
	if count > domain.MaxBatchScenarios {
		return nil, &domain.CapacityError{What: "scenario count", Count: count, Limit: domain.MaxBatchScenarios}
	}

	base := domain.PlanInput{
		Province:           b.Province,
		TaxCalculationMode: b.TaxCalculationMode,
		CPPMonthly:         b.CPPMonthly,
		OASStartAge:        b.OASStartAge,
		Pensions:           b.Pensions,
		AdditionalIncome:   b.AdditionalIncome,
		RealEstateHoldings: b.RealEstateHoldings,
	}
	for _, f := range fields {
		if !f.field.Varies() {
			f.set(&base, f.field.Min)
		}
	}

	plans := make([]domain.PlanInput, count)
	for i := 0; i < count; i++ {
		plan := base
		for j, f := range varying {
			if i>>j&1 == 1 {
				f.set(&plan, f.field.Max)
			} else {
				f.set(&plan, f.field.Min)
			}
		}
		plans[i] = plan
	}
	return plans, nil
}
