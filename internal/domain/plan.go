package domain

import (
	"github.com/shopspring/decimal"
)

// TaxMode selects the fidelity of the tax estimate used when sizing
// withdrawals.
type TaxMode string

const (
	// TaxModeSimplified applies a flat effective rate to all taxable income.
	TaxModeSimplified TaxMode = "simplified"
	// TaxModeAccurate applies graduated federal and provincial brackets
	// with basic personal amounts.
	TaxModeAccurate TaxMode = "accurate"
)

// Province identifies a Canadian province or territory for tax purposes.
type Province string

const (
	Ontario                 Province = "Ontario"
	BritishColumbia         Province = "British Columbia"
	Alberta                 Province = "Alberta"
	Quebec                  Province = "Quebec"
	Manitoba                Province = "Manitoba"
	Saskatchewan            Province = "Saskatchewan"
	NovaScotia              Province = "Nova Scotia"
	NewBrunswick            Province = "New Brunswick"
	PrinceEdwardIsland      Province = "Prince Edward Island"
	NewfoundlandAndLabrador Province = "Newfoundland and Labrador"
)

// PensionIncome is a single pension stream with compound indexing from its
// start year. EndYear is inclusive: the stream pays in EndYear and stops
// the year after. A nil EndYear means the pension is paid for life.
type PensionIncome struct {
	MonthlyAmount decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
	StartYear     int             `yaml:"start_year" json:"start_year"`
	IndexingRate  decimal.Decimal `yaml:"indexing_rate" json:"indexing_rate"`
	EndYear       *int            `yaml:"end_year,omitempty" json:"end_year,omitempty"`
}

// AdditionalIncome is a non-pension income stream (rental, consulting,
// royalties). Same shape and indexing semantics as PensionIncome; the
// indexing rate may be negative to model a declining stream.
type AdditionalIncome struct {
	MonthlyAmount decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
	StartYear     int             `yaml:"start_year" json:"start_year"`
	IndexingRate  decimal.Decimal `yaml:"indexing_rate" json:"indexing_rate"`
	EndYear       *int            `yaml:"end_year,omitempty" json:"end_year,omitempty"`
}

// RealEstateHolding is a single property. SaleAge zero means the property
// is never sold; otherwise the proceeds land in the non-registered account
// in the year the holder reaches SaleAge.
type RealEstateHolding struct {
	Value        decimal.Decimal `yaml:"value" json:"value"`
	RealReturn   decimal.Decimal `yaml:"real_return" json:"real_return"`
	SaleAge      int             `yaml:"sale_age" json:"sale_age"`
	PropertyType string          `yaml:"property_type" json:"property_type"`
}

// PlanInput is the immutable snapshot a projection is computed from. All
// growth and indexing rates are real (post-inflation) decimals.
type PlanInput struct {
	CurrentAge     int      `yaml:"current_age" json:"current_age"`
	RetirementAge  int      `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy int      `yaml:"life_expectancy" json:"life_expectancy"`
	Province       Province `yaml:"province" json:"province"`

	RRSPBalance   decimal.Decimal `yaml:"rrsp_balance" json:"rrsp_balance"`
	TFSABalance   decimal.Decimal `yaml:"tfsa_balance" json:"tfsa_balance"`
	NonRegistered decimal.Decimal `yaml:"non_registered" json:"non_registered"`

	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`

	RRSPRealReturn   decimal.Decimal `yaml:"rrsp_real_return" json:"rrsp_real_return"`
	TFSARealReturn   decimal.Decimal `yaml:"tfsa_real_return" json:"tfsa_real_return"`
	NonRegRealReturn decimal.Decimal `yaml:"non_reg_real_return" json:"non_reg_real_return"`

	// ExpectedInflation indexes desired spending from the plan start.
	// Account returns are already real, so the usual value is zero.
	ExpectedInflation decimal.Decimal `yaml:"expected_inflation" json:"expected_inflation"`

	CPPMonthly  decimal.Decimal `yaml:"cpp_monthly" json:"cpp_monthly"`
	CPPStartAge int             `yaml:"cpp_start_age" json:"cpp_start_age"`
	OASStartAge int             `yaml:"oas_start_age" json:"oas_start_age"`

	Pensions           []PensionIncome     `yaml:"pensions,omitempty" json:"pensions,omitempty"`
	AdditionalIncome   []AdditionalIncome  `yaml:"additional_income,omitempty" json:"additional_income,omitempty"`
	RealEstateHoldings []RealEstateHolding `yaml:"real_estate_holdings,omitempty" json:"real_estate_holdings,omitempty"`

	DesiredAnnualSpending decimal.Decimal `yaml:"desired_annual_spending" json:"desired_annual_spending"`

	TaxCalculationMode TaxMode `yaml:"tax_calculation_mode" json:"tax_calculation_mode"`
}

// Validate checks the structural invariants of a plan input. It returns a
// ValidationError describing the first violated field.
func (p *PlanInput) Validate() error {
	if p.CurrentAge < 18 || p.CurrentAge > 100 {
		return &ValidationError{Field: "current_age", Reason: "must be between 18 and 100"}
	}
	if p.RetirementAge < p.CurrentAge {
		return &ValidationError{Field: "retirement_age", Reason: "must be at or after current age"}
	}
	if p.LifeExpectancy <= p.CurrentAge {
		return &ValidationError{Field: "life_expectancy", Reason: "must be greater than current age"}
	}
	if p.LifeExpectancy <= p.RetirementAge {
		return &ValidationError{Field: "life_expectancy", Reason: "must be greater than retirement age"}
	}
	if p.Province == "" {
		return &ValidationError{Field: "province", Reason: "is required"}
	}
	if p.RRSPBalance.IsNegative() {
		return &ValidationError{Field: "rrsp_balance", Reason: "cannot be negative"}
	}
	if p.TFSABalance.IsNegative() {
		return &ValidationError{Field: "tfsa_balance", Reason: "cannot be negative"}
	}
	if p.NonRegistered.IsNegative() {
		return &ValidationError{Field: "non_registered", Reason: "cannot be negative"}
	}
	if p.MonthlyContribution.IsNegative() {
		return &ValidationError{Field: "monthly_contribution", Reason: "cannot be negative"}
	}
	if p.DesiredAnnualSpending.IsNegative() {
		return &ValidationError{Field: "desired_annual_spending", Reason: "cannot be negative"}
	}
	if p.CPPMonthly.IsNegative() {
		return &ValidationError{Field: "cpp_monthly", Reason: "cannot be negative"}
	}
	if p.CPPStartAge != 0 && (p.CPPStartAge < 60 || p.CPPStartAge > 70) {
		return &ValidationError{Field: "cpp_start_age", Reason: "must be between 60 and 70"}
	}
	if p.OASStartAge != 0 && (p.OASStartAge < 65 || p.OASStartAge > 70) {
		return &ValidationError{Field: "oas_start_age", Reason: "must be between 65 and 70"}
	}
	for _, rate := range []decimal.Decimal{p.RRSPRealReturn, p.TFSARealReturn, p.NonRegRealReturn} {
		if rate.LessThan(decimal.NewFromFloat(-0.10)) || rate.GreaterThan(decimal.NewFromFloat(0.15)) {
			return &ValidationError{Field: "real_return", Reason: "must be between -10% and 15%"}
		}
	}
	switch p.TaxCalculationMode {
	case TaxModeSimplified, TaxModeAccurate, "":
	default:
		return &ValidationError{Field: "tax_calculation_mode", Reason: "must be 'simplified' or 'accurate'"}
	}
	for i, pen := range p.Pensions {
		if err := validateStream("pensions", i, pen.MonthlyAmount, pen.StartYear, pen.EndYear); err != nil {
			return err
		}
	}
	for i, inc := range p.AdditionalIncome {
		if err := validateStream("additional_income", i, inc.MonthlyAmount, inc.StartYear, inc.EndYear); err != nil {
			return err
		}
	}
	for i, h := range p.RealEstateHoldings {
		if !h.Value.IsPositive() {
			return &ValidationError{Field: fieldAt("real_estate_holdings", i, "value"), Reason: "must be positive"}
		}
		if h.SaleAge < 0 {
			return &ValidationError{Field: fieldAt("real_estate_holdings", i, "sale_age"), Reason: "cannot be negative"}
		}
	}
	return nil
}

// Mode returns the effective tax mode, defaulting to simplified when the
// input leaves it unset.
func (p *PlanInput) Mode() TaxMode {
	if p.TaxCalculationMode == "" {
		return TaxModeSimplified
	}
	return p.TaxCalculationMode
}

func validateStream(kind string, i int, monthly decimal.Decimal, startYear int, endYear *int) error {
	if !monthly.IsPositive() {
		return &ValidationError{Field: fieldAt(kind, i, "monthly_amount"), Reason: "must be positive"}
	}
	if startYear <= 0 {
		return &ValidationError{Field: fieldAt(kind, i, "start_year"), Reason: "is required"}
	}
	if endYear != nil && *endYear < startYear {
		return &ValidationError{Field: fieldAt(kind, i, "end_year"), Reason: "must be at or after start_year"}
	}
	return nil
}
