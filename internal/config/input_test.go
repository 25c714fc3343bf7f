package config

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planYAML = `
current_age: 55
retirement_age: 65
life_expectancy: 90
province: Ontario
rrsp_balance: 450000
tfsa_balance: 95000
non_registered: 150000
monthly_contribution: 1500
rrsp_real_return: 0.04
tfsa_real_return: 0.04
non_reg_real_return: 0.035
cpp_monthly: 1100
cpp_start_age: 65
oas_start_age: 65
desired_annual_spending: 60000
tax_calculation_mode: accurate
pensions:
  - monthly_amount: 800
    start_year: 2035
    indexing_rate: 0.02
    end_year: 2055
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPlanFromYAML(t *testing.T) {
	parser := NewInputParser()
	plan, err := parser.LoadPlanFromFile(writeTempFile(t, "plan.yaml", planYAML))
	require.NoError(t, err)

	assert.Equal(t, 55, plan.CurrentAge)
	assert.Equal(t, 65, plan.RetirementAge)
	assert.Equal(t, domain.Ontario, plan.Province)
	assert.Equal(t, domain.TaxModeAccurate, plan.TaxCalculationMode)
	assert.True(t, plan.RRSPBalance.Equal(decimal.NewFromInt(450000)))
	assert.True(t, plan.MonthlyContribution.Equal(decimal.NewFromInt(1500)))

	require.Len(t, plan.Pensions, 1)
	assert.Equal(t, 2035, plan.Pensions[0].StartYear)
	require.NotNil(t, plan.Pensions[0].EndYear)
	assert.Equal(t, 2055, *plan.Pensions[0].EndYear)
}

func TestLoadPlanFromJSON(t *testing.T) {
	parser := NewInputParser()

	data, err := json.Marshal(parser.CreateExamplePlan())
	require.NoError(t, err)

	plan, err := parser.LoadPlanFromFile(writeTempFile(t, "plan.json", string(data)))
	require.NoError(t, err)

	assert.Equal(t, 55, plan.CurrentAge)
	assert.True(t, plan.DesiredAnnualSpending.Equal(decimal.NewFromInt(60000)))
	require.Len(t, plan.Pensions, 1)
	assert.True(t, plan.Pensions[0].MonthlyAmount.Equal(decimal.NewFromInt(800)))
}

func TestLoadPlanRejectsInvalidInput(t *testing.T) {
	invalid := `
current_age: 55
retirement_age: 50
life_expectancy: 90
province: Ontario
`
	parser := NewInputParser()
	_, err := parser.LoadPlanFromFile(writeTempFile(t, "bad.yaml", invalid))
	assert.Error(t, err)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "retirement_age", verr.Field)
}

func TestLoadPlanMissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadPlanFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadPlanMalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadPlanFromFile(writeTempFile(t, "broken.yaml", "current_age: [not a number"))
	assert.Error(t, err)
}

func TestLoadBatchFromYAML(t *testing.T) {
	batchYAML := `
current_age:
  min: 55
  max: 55
retirement_age:
  min: 60
  max: 67
  enabled: true
life_expectancy:
  min: 90
  max: 90
monthly_contribution:
  min: 1000
  max: 2500
  enabled: true
province: Ontario
tax_calculation_mode: simplified
cpp_monthly: 1100
oas_start_age: 65
`
	parser := NewInputParser()
	batch, err := parser.LoadBatchFromFile(writeTempFile(t, "batch.yaml", batchYAML))
	require.NoError(t, err)

	assert.Equal(t, 2, batch.VariableFieldCount())
	assert.Equal(t, 4, batch.ScenarioCount())
	assert.True(t, batch.RetirementAge.Varies())
	assert.False(t, batch.CurrentAge.Varies())
	assert.Equal(t, domain.Ontario, batch.Province)
}

func TestCreateExamplePlanIsValid(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.CreateExamplePlan().Validate())
}

func TestCreateExampleBatchExpandsCleanly(t *testing.T) {
	parser := NewInputParser()
	batch := parser.CreateExampleBatch()
	assert.Equal(t, 4, batch.VariableFieldCount())
	assert.Equal(t, 16, batch.ScenarioCount())
}
