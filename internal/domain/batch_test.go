package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRangeFieldValues(t *testing.T) {
	fixed := FixedRange(decimal.NewFromInt(60))
	assert.False(t, fixed.Varies())
	assert.Len(t, fixed.Values(), 1)

	ranged := RangeField{Min: decimal.NewFromInt(60), Max: decimal.NewFromInt(67), Enabled: true}
	assert.True(t, ranged.Varies())
	values := ranged.Values()
	assert.Len(t, values, 2)
	assert.True(t, values[0].Equal(decimal.NewFromInt(60)))
	assert.True(t, values[1].Equal(decimal.NewFromInt(67)))

	// An enabled range still contributes both endpoints even when they
	// are equal.
	degenerate := RangeField{Min: decimal.NewFromInt(60), Max: decimal.NewFromInt(60), Enabled: true}
	assert.True(t, degenerate.Varies())
	assert.Len(t, degenerate.Values(), 2)

	// A range that is not enabled contributes only its minimum.
	disabled := RangeField{Min: decimal.NewFromInt(60), Max: decimal.NewFromInt(67)}
	assert.False(t, disabled.Varies())
}

func TestBatchInputScenarioCount(t *testing.T) {
	b := BatchInput{}
	assert.Equal(t, 0, b.VariableFieldCount())
	assert.Equal(t, 1, b.ScenarioCount())

	b.RetirementAge = RangeField{Min: decimal.NewFromInt(60), Max: decimal.NewFromInt(67), Enabled: true}
	b.CPPStartAge = RangeField{Min: decimal.NewFromInt(60), Max: decimal.NewFromInt(70), Enabled: true}
	b.DesiredAnnualSpending = RangeField{Min: decimal.NewFromInt(50000), Max: decimal.NewFromInt(75000), Enabled: true}
	assert.Equal(t, 3, b.VariableFieldCount())
	assert.Equal(t, 8, b.ScenarioCount())
}

func TestBatchInputRangesOrderIsStable(t *testing.T) {
	b := BatchInput{
		CurrentAge:    RangeField{Min: decimal.NewFromInt(50), Max: decimal.NewFromInt(55), Enabled: true},
		RetirementAge: RangeField{Min: decimal.NewFromInt(60), Max: decimal.NewFromInt(67), Enabled: true},
	}
	ranges := b.Ranges()
	assert.Len(t, ranges, 13)
	assert.True(t, ranges[0].Varies())
	assert.True(t, ranges[1].Varies())
	for _, r := range ranges[2:] {
		assert.False(t, r.Varies())
	}
}

func TestBatchSummarySuccessRate(t *testing.T) {
	s := BatchSummary{Succeeded: 8, FundedCount: 6}
	assert.True(t, s.SuccessRate().Equal(decimal.NewFromFloat(0.75)), "got %s", s.SuccessRate())

	empty := BatchSummary{}
	assert.True(t, empty.SuccessRate().IsZero())
}
