// Package config loads plan and batch inputs from YAML or JSON files.
package config

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadPlanFromFile loads a plan from a YAML or JSON file. JSON is
// selected by file extension; everything else parses as YAML.
func (ip *InputParser) LoadPlanFromFile(filename string) (*domain.PlanInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.PlanInput
	if err := unmarshal(filename, data, &plan); err != nil {
		return nil, err
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// LoadBatchFromFile loads a batch definition from a YAML or JSON file.
func (ip *InputParser) LoadBatchFromFile(filename string) (*domain.BatchInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var batch domain.BatchInput
	if err := unmarshal(filename, data, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func unmarshal(filename string, data []byte, out any) error {
	if strings.HasSuffix(strings.ToLower(filename), ".json") {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// CreateExamplePlan creates a representative plan for the init command.
func (ip *InputParser) CreateExamplePlan() *domain.PlanInput {
	pensionEnd := 2055
	return &domain.PlanInput{
		CurrentAge:     55,
		RetirementAge:  65,
		LifeExpectancy: 90,
		Province:       domain.Ontario,

		RRSPBalance:   decimal.NewFromInt(450000),
		TFSABalance:   decimal.NewFromInt(95000),
		NonRegistered: decimal.NewFromInt(150000),

		MonthlyContribution: decimal.NewFromInt(1500),

		RRSPRealReturn:   decimal.NewFromFloat(0.04),
		TFSARealReturn:   decimal.NewFromFloat(0.04),
		NonRegRealReturn: decimal.NewFromFloat(0.035),

		CPPMonthly:  decimal.NewFromFloat(1100),
		CPPStartAge: 65,
		OASStartAge: 65,

		Pensions: []domain.PensionIncome{
			{
				MonthlyAmount: decimal.NewFromInt(800),
				StartYear:     2035,
				IndexingRate:  decimal.NewFromFloat(0.02),
				EndYear:       &pensionEnd,
			},
		},

		DesiredAnnualSpending: decimal.NewFromInt(60000),
		TaxCalculationMode:    domain.TaxModeAccurate,
	}
}

// CreateExampleBatch creates a representative batch for the init command.
func (ip *InputParser) CreateExampleBatch() *domain.BatchInput {
	return &domain.BatchInput{
		CurrentAge:     domain.FixedRange(decimal.NewFromInt(55)),
		RetirementAge:  domain.RangeField{Min: decimal.NewFromInt(60), Max: decimal.NewFromInt(67), Enabled: true},
		LifeExpectancy: domain.FixedRange(decimal.NewFromInt(90)),

		RRSPBalance:   domain.FixedRange(decimal.NewFromInt(450000)),
		TFSABalance:   domain.FixedRange(decimal.NewFromInt(95000)),
		NonRegistered: domain.FixedRange(decimal.NewFromInt(150000)),

		MonthlyContribution:   domain.RangeField{Min: decimal.NewFromInt(1000), Max: decimal.NewFromInt(2500), Enabled: true},
		DesiredAnnualSpending: domain.RangeField{Min: decimal.NewFromInt(50000), Max: decimal.NewFromInt(75000), Enabled: true},
		CPPStartAge:           domain.RangeField{Min: decimal.NewFromInt(60), Max: decimal.NewFromInt(70), Enabled: true},

		RRSPRealReturn:    domain.FixedRange(decimal.NewFromFloat(0.04)),
		TFSARealReturn:    domain.FixedRange(decimal.NewFromFloat(0.04)),
		NonRegRealReturn:  domain.FixedRange(decimal.NewFromFloat(0.035)),
		ExpectedInflation: domain.FixedRange(decimal.Zero),

		Province:           domain.Ontario,
		TaxCalculationMode: domain.TaxModeAccurate,
		CPPMonthly:         decimal.NewFromFloat(1100),
		OASStartAge:        65,
	}
}
