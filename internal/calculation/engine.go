package calculation

import (
	"context"
	"fmt"

	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine orchestrates plan projections. Rules and tax tables are
// injected so tests and callers can pin them; zero-value fields are
// filled with defaults by the constructors.
type Engine struct {
	Rules    *RetirementRules
	Tables   *TaxTables
	BaseYear int
	Logger   Logger
}

// NewEngine creates an engine with the default rules and tax tables.
func NewEngine() *Engine {
	return &Engine{
		Rules:    DefaultRules(),
		Tables:   DefaultTaxTables(),
		BaseYear: ProjectionBaseYear,
		Logger:   NopLogger{},
	}
}

// NewEngineWithConfig creates an engine with explicit rules and tables.
// Nil arguments fall back to the defaults.
func NewEngineWithConfig(rules *RetirementRules, tables *TaxTables) *Engine {
	e := NewEngine()
	if rules != nil {
		e.Rules = rules
	}
	if tables != nil {
		e.Tables = tables
	}
	return e
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ProjectPlan runs the full projection for a plan. Inputs are validated
// up front; an invalid plan or an unresolvable tax configuration returns
// before any year is simulated.
func (e *Engine) ProjectPlan(ctx context.Context, plan *domain.PlanInput) (*domain.PlanProjection, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	estimator, err := NewTaxEstimator(e.Tables, plan.Mode(), plan.Province)
	if err != nil {
		return nil, err
	}

	e.Logger.Infof("projecting plan: age %d to %d, retiring at %d, %s tax mode",
		plan.CurrentAge, plan.LifeExpectancy, plan.RetirementAge, plan.Mode())

	years := e.generateProjection(plan, estimator)

	result := &domain.PlanProjection{
		Input: *plan,
		Years: years,
	}

	shortfalls := 0
	for i := range years {
		result.TotalContributions = result.TotalContributions.Add(years[i].Contributions)
		result.TotalTaxesPaid = result.TotalTaxesPaid.Add(years[i].TaxesEstimated)
		shortfalls += len(years[i].Warnings)
	}
	if n := len(years); n > 0 {
		result.FinalBalance = years[n-1].TotalBalance()
	}
	result.Success = shortfalls == 0 && !result.FinalBalance.IsNegative()
	result.Recommendations = e.recommendations(plan, result)

	return result, nil
}

// recommendations produces the plain-language guidance attached to a
// completed projection.
func (e *Engine) recommendations(plan *domain.PlanInput, result *domain.PlanProjection) []string {
	var recs []string

	switch {
	case !result.Success:
		age := result.FirstShortfallAge()
		recs = append(recs, fmt.Sprintf(
			"Plan runs out of money at age %d, before life expectancy. Consider reducing spending, increasing contributions, or working longer.", age))
	case result.FinalBalance.LessThan(decimal.NewFromInt(50000)):
		recs = append(recs, "Very low final balance. Consider building more buffer.")
	case result.FinalBalance.GreaterThan(decimal.NewFromInt(1000000)):
		recs = append(recs, "Strong financial position. Consider legacy planning or increased spending.")
	default:
		recs = append(recs, "Plan appears sustainable with a reasonable final balance.")
	}

	if plan.CurrentAge <= e.Rules.RRIFConversionAge && plan.RetirementAge <= e.Rules.RRIFConversionAge {
		recs = append(recs, fmt.Sprintf(
			"Remember: the RRSP must be converted to a RRIF by December 31 of the year you turn %d.", e.Rules.RRIFConversionAge))
	}

	cppStart := plan.CPPStartAge
	if cppStart == 0 {
		cppStart = e.Rules.CPPNormalAge
	}
	switch {
	case cppStart < e.Rules.CPPNormalAge:
		recs = append(recs, fmt.Sprintf(
			"Taking CPP at %d reduces benefits. Consider delaying if financially viable.", cppStart))
	case cppStart > e.Rules.CPPNormalAge:
		boost := decimal.NewFromInt(int64((cppStart - e.Rules.CPPNormalAge) * 12)).
			Mul(e.Rules.CPPLateIncreaseRate).
			Mul(decimal.NewFromInt(100))
		recs = append(recs, fmt.Sprintf(
			"Delaying CPP to %d increases benefits by %s%%.", cppStart, boost.StringFixed(1)))
	}

	return recs
}
