package domain

import (
	"github.com/shopspring/decimal"
)

// YearlyProjection is the end-of-year snapshot for a single simulated
// year. Year is the zero-based offset from the plan start; Age is the
// holder's age during that year.
type YearlyProjection struct {
	Year int `json:"year"`
	Age  int `json:"age"`

	RRSPBalance   decimal.Decimal `json:"rrsp_balance"`
	TFSABalance   decimal.Decimal `json:"tfsa_balance"`
	NonRegistered decimal.Decimal `json:"non_registered"`
	RealEstate    decimal.Decimal `json:"real_estate"`

	RRIFWithdrawal   decimal.Decimal `json:"rrif_withdrawal"`
	CPPIncome        decimal.Decimal `json:"cpp_income"`
	OASIncome        decimal.Decimal `json:"oas_income"`
	PensionIncome    decimal.Decimal `json:"pension_income"`
	AdditionalIncome decimal.Decimal `json:"additional_income"`

	GrossIncome          decimal.Decimal `json:"gross_income"`
	TaxableIncome        decimal.Decimal `json:"taxable_income"`
	TaxesEstimated       decimal.Decimal `json:"taxes_estimated"`
	AdditionalWithdrawal decimal.Decimal `json:"additional_withdrawal"`
	NetIncome            decimal.Decimal `json:"net_income"`
	Spending             decimal.Decimal `json:"spending"`
	Contributions        decimal.Decimal `json:"contributions"`

	Warnings []string `json:"warnings,omitempty"`
}

// InvestableBalance is the sum of the three investment accounts,
// excluding real estate.
func (y *YearlyProjection) InvestableBalance() decimal.Decimal {
	return y.RRSPBalance.Add(y.TFSABalance).Add(y.NonRegistered)
}

// TotalBalance includes real estate still held at year end.
func (y *YearlyProjection) TotalBalance() decimal.Decimal {
	return y.InvestableBalance().Add(y.RealEstate)
}

// PlanProjection is the full result of projecting a plan from current age
// to life expectancy.
type PlanProjection struct {
	Input PlanInput `json:"input"`

	Years []YearlyProjection `json:"years"`

	// Success is true when every retirement year met desired spending
	// without exhausting the accounts.
	Success bool `json:"success"`

	FinalBalance       decimal.Decimal `json:"final_balance"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalTaxesPaid     decimal.Decimal `json:"total_taxes_paid"`

	Recommendations []string `json:"recommendations,omitempty"`
}

// BalanceAtRetirement returns the investable balance in the last
// pre-retirement year, or the starting balances if retirement is
// immediate.
func (p *PlanProjection) BalanceAtRetirement() decimal.Decimal {
	offset := p.Input.RetirementAge - p.Input.CurrentAge
	if offset <= 0 || len(p.Years) == 0 {
		return p.Input.RRSPBalance.Add(p.Input.TFSABalance).Add(p.Input.NonRegistered)
	}
	if offset > len(p.Years) {
		offset = len(p.Years)
	}
	return p.Years[offset-1].InvestableBalance()
}

// FirstShortfallAge returns the age of the first year carrying an
// insufficient-funds warning, or zero when there is none.
func (p *PlanProjection) FirstShortfallAge() int {
	for i := range p.Years {
		if len(p.Years[i].Warnings) > 0 {
			return p.Years[i].Age
		}
	}
	return 0
}
