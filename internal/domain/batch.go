package domain

import (
	"github.com/shopspring/decimal"
)

// Hard and soft limits on batch expansion. The hard limits reject the
// request before any scenario runs; the soft threshold only logs.
const (
	MaxBatchScenarios = 4096
	MaxVariableFields = 12
	SoftScenarioLimit = 1024
)

// RangeField is a plan parameter that may be varied across a batch. When
// Enabled, the expansion takes both Min and Max; otherwise Min is used as
// the fixed value.
type RangeField struct {
	Min     decimal.Decimal `yaml:"min" json:"min"`
	Max     decimal.Decimal `yaml:"max" json:"max"`
	Enabled bool            `yaml:"enabled" json:"enabled"`
}

// Varies reports whether the field contributes two values to the
// expansion. Every enabled range counts toward the scenario total, even
// one whose endpoints happen to be equal.
func (r RangeField) Varies() bool {
	return r.Enabled
}

// Values returns the boundary values the expansion iterates over.
func (r RangeField) Values() []decimal.Decimal {
	if r.Enabled {
		return []decimal.Decimal{r.Min, r.Max}
	}
	return []decimal.Decimal{r.Min}
}

// FixedRange wraps a single value as a disabled range.
func FixedRange(v decimal.Decimal) RangeField {
	return RangeField{Min: v, Max: v}
}

// BatchInput describes a family of plans: the ranged parameters plus the
// settings held constant across every scenario.
type BatchInput struct {
	CurrentAge            RangeField `yaml:"current_age" json:"current_age"`
	RetirementAge         RangeField `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy        RangeField `yaml:"life_expectancy" json:"life_expectancy"`
	RRSPBalance           RangeField `yaml:"rrsp_balance" json:"rrsp_balance"`
	TFSABalance           RangeField `yaml:"tfsa_balance" json:"tfsa_balance"`
	NonRegistered         RangeField `yaml:"non_registered" json:"non_registered"`
	MonthlyContribution   RangeField `yaml:"monthly_contribution" json:"monthly_contribution"`
	DesiredAnnualSpending RangeField `yaml:"desired_annual_spending" json:"desired_annual_spending"`
	CPPStartAge           RangeField `yaml:"cpp_start_age" json:"cpp_start_age"`
	RRSPRealReturn        RangeField `yaml:"rrsp_real_return" json:"rrsp_real_return"`
	TFSARealReturn        RangeField `yaml:"tfsa_real_return" json:"tfsa_real_return"`
	NonRegRealReturn      RangeField `yaml:"non_reg_real_return" json:"non_reg_real_return"`
	ExpectedInflation     RangeField `yaml:"expected_inflation" json:"expected_inflation"`

	Province           Province            `yaml:"province" json:"province"`
	TaxCalculationMode TaxMode             `yaml:"tax_calculation_mode" json:"tax_calculation_mode"`
	CPPMonthly         decimal.Decimal     `yaml:"cpp_monthly" json:"cpp_monthly"`
	OASStartAge        int                 `yaml:"oas_start_age" json:"oas_start_age"`
	Pensions           []PensionIncome     `yaml:"pensions,omitempty" json:"pensions,omitempty"`
	AdditionalIncome   []AdditionalIncome  `yaml:"additional_income,omitempty" json:"additional_income,omitempty"`
	RealEstateHoldings []RealEstateHolding `yaml:"real_estate_holdings,omitempty" json:"real_estate_holdings,omitempty"`
}

// Ranges returns the ranged fields in a stable order. The expansion walks
// this slice so scenario indices are deterministic across runs.
func (b *BatchInput) Ranges() []RangeField {
	return []RangeField{
		b.CurrentAge,
		b.RetirementAge,
		b.LifeExpectancy,
		b.RRSPBalance,
		b.TFSABalance,
		b.NonRegistered,
		b.MonthlyContribution,
		b.DesiredAnnualSpending,
		b.CPPStartAge,
		b.RRSPRealReturn,
		b.TFSARealReturn,
		b.NonRegRealReturn,
		b.ExpectedInflation,
	}
}

// VariableFieldCount is the number of fields contributing two values.
func (b *BatchInput) VariableFieldCount() int {
	n := 0
	for _, r := range b.Ranges() {
		if r.Varies() {
			n++
		}
	}
	return n
}

// ScenarioCount is the size of the factorial expansion, 2 to the power of
// the variable field count.
func (b *BatchInput) ScenarioCount() int {
	return 1 << b.VariableFieldCount()
}

// ScenarioOutcome pairs an expanded plan with its projection. Failed
// scenarios carry the error text and a nil projection.
type ScenarioOutcome struct {
	Index      int             `json:"index"`
	Input      PlanInput       `json:"input"`
	Projection *PlanProjection `json:"projection,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// BatchSummary aggregates the outcomes of a completed batch.
type BatchSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`

	// FundedCount is the number of succeeded scenarios whose plan stayed
	// funded through life expectancy.
	FundedCount int `json:"funded_count"`

	BestFinalBalance    decimal.Decimal `json:"best_final_balance"`
	WorstFinalBalance   decimal.Decimal `json:"worst_final_balance"`
	AverageFinalBalance decimal.Decimal `json:"average_final_balance"`
	BestIndex           int             `json:"best_index"`
	WorstIndex          int             `json:"worst_index"`
}

// SuccessRate is the share of succeeded scenarios whose plan stayed
// funded, in [0,1]. Zero when nothing succeeded.
func (s *BatchSummary) SuccessRate() decimal.Decimal {
	if s.Succeeded == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.FundedCount)).Div(decimal.NewFromInt(int64(s.Succeeded)))
}

// BatchResult is the complete output of a batch run, ordered by scenario
// index regardless of completion order.
type BatchResult struct {
	Scenarios []ScenarioOutcome `json:"scenarios"`
	Summary   BatchSummary      `json:"summary"`
}
