package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/mapleplan/retirement-planner/internal/domain"
)

// CSVFormatter writes one row per projected year, or one row per
// scenario for batch results.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(result *domain.PlanProjection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Age", "RRSPBalance", "TFSABalance", "NonRegistered", "RealEstate", "RRIFWithdrawal", "CPPIncome", "OASIncome", "PensionIncome", "AdditionalIncome", "GrossIncome", "TaxableIncome", "TaxesEstimated", "AdditionalWithdrawal", "NetIncome", "Spending", "Contributions", "TotalBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range result.Years {
		y := &result.Years[i]
		row := []string{
			strconv.Itoa(y.Year),
			strconv.Itoa(y.Age),
			y.RRSPBalance.StringFixed(2),
			y.TFSABalance.StringFixed(2),
			y.NonRegistered.StringFixed(2),
			y.RealEstate.StringFixed(2),
			y.RRIFWithdrawal.StringFixed(2),
			y.CPPIncome.StringFixed(2),
			y.OASIncome.StringFixed(2),
			y.PensionIncome.StringFixed(2),
			y.AdditionalIncome.StringFixed(2),
			y.GrossIncome.StringFixed(2),
			y.TaxableIncome.StringFixed(2),
			y.TaxesEstimated.StringFixed(2),
			y.AdditionalWithdrawal.StringFixed(2),
			y.NetIncome.StringFixed(2),
			y.Spending.StringFixed(2),
			y.Contributions.StringFixed(2),
			y.TotalBalance().StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (c CSVFormatter) FormatBatch(result *domain.BatchResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Index", "RetirementAge", "CPPStartAge", "MonthlyContribution", "DesiredAnnualSpending", "Success", "FinalBalance", "TotalContributions", "TotalTaxesPaid", "FirstShortfallAge", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range result.Scenarios {
		sc := &result.Scenarios[i]
		row := []string{
			strconv.Itoa(sc.Index),
			strconv.Itoa(sc.Input.RetirementAge),
			strconv.Itoa(sc.Input.CPPStartAge),
			sc.Input.MonthlyContribution.StringFixed(2),
			sc.Input.DesiredAnnualSpending.StringFixed(2),
		}
		if sc.Projection != nil {
			row = append(row,
				strconv.FormatBool(sc.Projection.Success),
				sc.Projection.FinalBalance.StringFixed(2),
				sc.Projection.TotalContributions.StringFixed(2),
				sc.Projection.TotalTaxesPaid.StringFixed(2),
				strconv.Itoa(sc.Projection.FirstShortfallAge()),
				"",
			)
		} else {
			row = append(row, "", "", "", "", "", sc.Error)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
