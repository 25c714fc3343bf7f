package output

import (
	"bytes"
	"fmt"

	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.PlanProjection) ([]byte, error) {
	var buf bytes.Buffer
	in := &result.Input

	fmt.Fprintln(&buf, "RETIREMENT PLAN PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Age %d to %d, retiring at %d (%s, %s tax mode)\n",
		in.CurrentAge, in.LifeExpectancy, in.RetirementAge, in.Province, in.Mode())
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Balance at retirement: %s\n", FormatCurrency(result.BalanceAtRetirement()))
	fmt.Fprintf(&buf, "Final balance:         %s\n", FormatCurrency(result.FinalBalance))
	fmt.Fprintf(&buf, "Total contributions:   %s\n", FormatCurrency(result.TotalContributions))
	fmt.Fprintf(&buf, "Total taxes paid:      %s\n", FormatCurrency(result.TotalTaxesPaid))
	if result.Success {
		fmt.Fprintln(&buf, "Outcome:               plan is funded through life expectancy")
	} else {
		fmt.Fprintf(&buf, "Outcome:               SHORTFALL starting at age %d\n", result.FirstShortfallAge())
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Year  Age    RRSP/RRIF         TFSA      Non-Reg   Withdrawals        Taxes")
	for i := range result.Years {
		y := &result.Years[i]
		marker := " "
		if len(y.Warnings) > 0 {
			marker = "!"
		}
		fmt.Fprintf(&buf, "%4d  %3d %12s %12s %12s %12s %12s %s\n",
			y.Year, y.Age,
			y.RRSPBalance.StringFixed(0),
			y.TFSABalance.StringFixed(0),
			y.NonRegistered.StringFixed(0),
			y.RRIFWithdrawal.Add(y.AdditionalWithdrawal).StringFixed(0),
			y.TaxesEstimated.StringFixed(0),
			marker)
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Recommendations:")
		for _, r := range result.Recommendations {
			fmt.Fprintf(&buf, "  - %s\n", r)
		}
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatBatch(result *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer
	s := &result.Summary

	fmt.Fprintln(&buf, "RETIREMENT BATCH SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Scenarios: %d (%d succeeded, %d failed)\n", s.Total, s.Succeeded, s.Failed)
	if s.BestIndex >= 0 {
		rate := s.SuccessRate().Mul(decimal.NewFromInt(100))
		fmt.Fprintf(&buf, "Funded through life expectancy: %d of %d (%s%%)\n", s.FundedCount, s.Succeeded, rate.StringFixed(0))
		fmt.Fprintf(&buf, "Best final balance:    %s (scenario %d)\n", FormatCurrency(s.BestFinalBalance), s.BestIndex)
		fmt.Fprintf(&buf, "Worst final balance:   %s (scenario %d)\n", FormatCurrency(s.WorstFinalBalance), s.WorstIndex)
		fmt.Fprintf(&buf, "Average final balance: %s\n", FormatCurrency(s.AverageFinalBalance))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Index  Retire  CPP  Contrib/mo     Spending     Final Balance  Outcome")
	for i := range result.Scenarios {
		sc := &result.Scenarios[i]
		if sc.Projection == nil {
			fmt.Fprintf(&buf, "%5d  error: %s\n", sc.Index, sc.Error)
			continue
		}
		outcome := "funded"
		if !sc.Projection.Success {
			outcome = fmt.Sprintf("shortfall at %d", sc.Projection.FirstShortfallAge())
		}
		fmt.Fprintf(&buf, "%5d  %6d  %3d %11s %12s %17s  %s\n",
			sc.Index,
			sc.Input.RetirementAge,
			sc.Input.CPPStartAge,
			sc.Input.MonthlyContribution.StringFixed(0),
			sc.Input.DesiredAnnualSpending.StringFixed(0),
			sc.Projection.FinalBalance.StringFixed(0),
			outcome)
	}
	return buf.Bytes(), nil
}
