package calculation

import (
	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal and provincial brackets: 2024 tax year for all projection
//    years. No inflation indexing applied to future years; projections
//    run in real dollars so this is consistent with real returns.
//
// 2. Basic personal amounts reduce taxable income directly rather than
//    being applied as non-refundable credits. At the lowest bracket rate
//    the two are equivalent.
//
// 3. All registered withdrawals (RRIF minimums and additional RRSP
//    withdrawals) are fully taxable in the year taken. TFSA withdrawals
//    and non-registered withdrawals are not taxed; capital gains inside
//    the non-registered account are ignored.
//
// 4. Simplified mode applies a flat 25% to all taxable income, useful
//    for quick comparisons and as a conservative first cut.

// TaxBracket is one marginal bracket. Upper is the inclusive upper bound
// of the bracket; the last bracket of a schedule has no upper bound.
type TaxBracket struct {
	Upper decimal.Decimal
	Rate  decimal.Decimal
}

// unbounded marks the open top bracket in the tables. The walkers never
// read the last bracket's bound, so the value is documentation only.
var unbounded = decimal.NewFromInt(1_000_000_000)

// TaxTables holds the federal schedule plus one schedule and basic
// personal amount per supported province.
type TaxTables struct {
	FederalBrackets []TaxBracket
	FederalBPA      decimal.Decimal

	ProvincialBrackets map[domain.Province][]TaxBracket
	ProvincialBPA      map[domain.Province]decimal.Decimal

	SimplifiedRate decimal.Decimal
}

// DefaultTaxTables returns the 2024 federal and provincial schedules.
func DefaultTaxTables() *TaxTables {
	return &TaxTables{
		FederalBrackets: []TaxBracket{
			{decimal.NewFromInt(55867), decimal.NewFromFloat(0.15)},
			{decimal.NewFromInt(111733), decimal.NewFromFloat(0.205)},
			{decimal.NewFromInt(173205), decimal.NewFromFloat(0.26)},
			{decimal.NewFromInt(246752), decimal.NewFromFloat(0.29)},
			{unbounded, decimal.NewFromFloat(0.33)},
		},
		FederalBPA: decimal.NewFromInt(15000),

		ProvincialBrackets: map[domain.Province][]TaxBracket{
			domain.Ontario: {
				{decimal.NewFromInt(49231), decimal.NewFromFloat(0.0505)},
				{decimal.NewFromInt(98463), decimal.NewFromFloat(0.0915)},
				{decimal.NewFromInt(150000), decimal.NewFromFloat(0.1116)},
				{decimal.NewFromInt(220000), decimal.NewFromFloat(0.1216)},
				{unbounded, decimal.NewFromFloat(0.1316)},
			},
			domain.BritishColumbia: {
				{decimal.NewFromInt(45654), decimal.NewFromFloat(0.0506)},
				{decimal.NewFromInt(91310), decimal.NewFromFloat(0.077)},
				{decimal.NewFromInt(104835), decimal.NewFromFloat(0.105)},
				{decimal.NewFromInt(127299), decimal.NewFromFloat(0.1229)},
				{decimal.NewFromInt(172602), decimal.NewFromFloat(0.147)},
				{decimal.NewFromInt(240716), decimal.NewFromFloat(0.168)},
				{unbounded, decimal.NewFromFloat(0.205)},
			},
			domain.Alberta: {
				{decimal.NewFromInt(142292), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(170751), decimal.NewFromFloat(0.12)},
				{decimal.NewFromInt(227668), decimal.NewFromFloat(0.13)},
				{decimal.NewFromInt(341502), decimal.NewFromFloat(0.14)},
				{unbounded, decimal.NewFromFloat(0.15)},
			},
			domain.Quebec: {
				{decimal.NewFromInt(49275), decimal.NewFromFloat(0.15)},
				{decimal.NewFromInt(98540), decimal.NewFromFloat(0.20)},
				{decimal.NewFromInt(119910), decimal.NewFromFloat(0.24)},
				{unbounded, decimal.NewFromFloat(0.2575)},
			},
			domain.Manitoba: {
				{decimal.NewFromInt(36842), decimal.NewFromFloat(0.108)},
				{decimal.NewFromInt(79625), decimal.NewFromFloat(0.1275)},
				{unbounded, decimal.NewFromFloat(0.174)},
			},
			domain.Saskatchewan: {
				{decimal.NewFromInt(49720), decimal.NewFromFloat(0.105)},
				{decimal.NewFromInt(142058), decimal.NewFromFloat(0.125)},
				{unbounded, decimal.NewFromFloat(0.145)},
			},
			domain.NovaScotia: {
				{decimal.NewFromInt(29590), decimal.NewFromFloat(0.0879)},
				{decimal.NewFromInt(59180), decimal.NewFromFloat(0.1495)},
				{decimal.NewFromInt(93000), decimal.NewFromFloat(0.1667)},
				{decimal.NewFromInt(150000), decimal.NewFromFloat(0.175)},
				{unbounded, decimal.NewFromFloat(0.21)},
			},
			domain.NewBrunswick: {
				{decimal.NewFromInt(47715), decimal.NewFromFloat(0.094)},
				{decimal.NewFromInt(95431), decimal.NewFromFloat(0.14)},
				{decimal.NewFromInt(176756), decimal.NewFromFloat(0.16)},
				{unbounded, decimal.NewFromFloat(0.195)},
			},
			domain.PrinceEdwardIsland: {
				{decimal.NewFromInt(31984), decimal.NewFromFloat(0.098)},
				{decimal.NewFromInt(63969), decimal.NewFromFloat(0.138)},
				{unbounded, decimal.NewFromFloat(0.167)},
			},
			domain.NewfoundlandAndLabrador: {
				{decimal.NewFromInt(41457), decimal.NewFromFloat(0.087)},
				{decimal.NewFromInt(82913), decimal.NewFromFloat(0.145)},
				{decimal.NewFromInt(148027), decimal.NewFromFloat(0.158)},
				{decimal.NewFromInt(207239), decimal.NewFromFloat(0.173)},
				{decimal.NewFromInt(264750), decimal.NewFromFloat(0.183)},
				{decimal.NewFromInt(529500), decimal.NewFromFloat(0.193)},
				{decimal.NewFromInt(1059000), decimal.NewFromFloat(0.198)},
				{unbounded, decimal.NewFromFloat(0.208)},
			},
		},
		ProvincialBPA: map[domain.Province]decimal.Decimal{
			domain.Ontario:                 decimal.NewFromInt(11865),
			domain.BritishColumbia:         decimal.NewFromInt(12580),
			domain.Alberta:                 decimal.NewFromInt(21885),
			domain.Quebec:                  decimal.NewFromInt(17183),
			domain.Manitoba:                decimal.NewFromInt(15000),
			domain.Saskatchewan:            decimal.NewFromInt(17661),
			domain.NovaScotia:              decimal.NewFromInt(8481),
			domain.NewBrunswick:            decimal.NewFromInt(12458),
			domain.PrinceEdwardIsland:      decimal.NewFromInt(12000),
			domain.NewfoundlandAndLabrador: decimal.NewFromInt(10382),
		},

		SimplifiedRate: decimal.NewFromFloat(0.25),
	}
}

// TaxEstimator computes the tax owing on a year's taxable income. The
// province is bound at construction time so an unknown province fails
// up front rather than producing a silent zero mid-projection.
type TaxEstimator interface {
	EstimateTax(taxableIncome decimal.Decimal) decimal.Decimal
	MarginalRate(taxableIncome decimal.Decimal) decimal.Decimal
}

// NewTaxEstimator builds the estimator for a tax mode and province.
// Accurate mode returns a ConfigurationError when the province has no
// bracket schedule.
func NewTaxEstimator(tables *TaxTables, mode domain.TaxMode, province domain.Province) (TaxEstimator, error) {
	switch mode {
	case domain.TaxModeAccurate:
		brackets, ok := tables.ProvincialBrackets[province]
		if !ok {
			return nil, &domain.ConfigurationError{
				Setting: "province",
				Reason:  "no tax schedule for " + string(province),
			}
		}
		bpa, ok := tables.ProvincialBPA[province]
		if !ok {
			return nil, &domain.ConfigurationError{
				Setting: "province",
				Reason:  "no basic personal amount for " + string(province),
			}
		}
		return &accurateEstimator{
			federalBrackets:    tables.FederalBrackets,
			federalBPA:         tables.FederalBPA,
			provincialBrackets: brackets,
			provincialBPA:      bpa,
		}, nil
	case domain.TaxModeSimplified, "":
		return &simplifiedEstimator{rate: tables.SimplifiedRate}, nil
	default:
		return nil, &domain.ConfigurationError{
			Setting: "tax_calculation_mode",
			Reason:  "unknown mode " + string(mode),
		}
	}
}

// simplifiedEstimator applies one flat rate to all taxable income.
type simplifiedEstimator struct {
	rate decimal.Decimal
}

func (s *simplifiedEstimator) EstimateTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return taxableIncome.Mul(s.rate)
}

func (s *simplifiedEstimator) MarginalRate(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return s.rate
}

// accurateEstimator walks the federal and provincial marginal brackets,
// each after its own basic personal amount.
type accurateEstimator struct {
	federalBrackets    []TaxBracket
	federalBPA         decimal.Decimal
	provincialBrackets []TaxBracket
	provincialBPA      decimal.Decimal
}

func (a *accurateEstimator) EstimateTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	federal := bracketTax(taxableIncome.Sub(a.federalBPA), a.federalBrackets)
	provincial := bracketTax(taxableIncome.Sub(a.provincialBPA), a.provincialBrackets)
	return federal.Add(provincial)
}

func (a *accurateEstimator) MarginalRate(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	fed := marginalRate(taxableIncome.Sub(a.federalBPA), a.federalBrackets)
	prov := marginalRate(taxableIncome.Sub(a.provincialBPA), a.provincialBrackets)
	return fed.Add(prov)
}

func bracketTax(income decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	tax := decimal.Zero
	lower := decimal.Zero
	for i, b := range brackets {
		// The last bracket has no upper bound.
		if i == len(brackets)-1 || income.LessThanOrEqual(b.Upper) {
			tax = tax.Add(income.Sub(lower).Mul(b.Rate))
			break
		}
		tax = tax.Add(b.Upper.Sub(lower).Mul(b.Rate))
		lower = b.Upper
	}
	return tax
}

func marginalRate(income decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	for i, b := range brackets {
		if i == len(brackets)-1 || income.LessThanOrEqual(b.Upper) {
			return b.Rate
		}
	}
	return decimal.Zero
}
