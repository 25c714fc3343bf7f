package batch

import (
	"time"

	"github.com/mapleplan/retirement-planner/internal/domain"
)

// Per-scenario cost assumptions for the pre-run estimate. The duration
// carries a 1.5x overhead factor for scheduling and result assembly.
const (
	perScenarioTime     = 40 * time.Millisecond
	timeOverheadFactor  = 1.5
	perScenarioCostUnit = 1.0
)

// Estimate is the pre-run sizing summary for a batch request.
type Estimate struct {
	Scenarios         int           `json:"scenarios"`
	VariableFields    int           `json:"variable_fields"`
	EstimatedDuration time.Duration `json:"estimated_duration"`
	EstimatedCost     float64       `json:"estimated_cost"`
	OverSoftLimit     bool          `json:"over_soft_limit"`
}

// Estimate sizes a batch without running it. The same capacity checks
// apply as in Run, so a request that would be rejected fails here too.
func (r *Runner) Estimate(b *domain.BatchInput) (*Estimate, error) {
	if _, err := Expand(b); err != nil {
		return nil, err
	}
	n := b.ScenarioCount()
	return &Estimate{
		Scenarios:         n,
		VariableFields:    b.VariableFieldCount(),
		EstimatedDuration: time.Duration(float64(n) * float64(perScenarioTime) * timeOverheadFactor),
		EstimatedCost:     float64(n) * perScenarioCostUnit,
		OverSoftLimit:     n > domain.SoftScenarioLimit,
	}, nil
}
