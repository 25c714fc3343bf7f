package batch

import (
	"context"
	"sync"

	"github.com/mapleplan/retirement-planner/internal/calculation"
	"github.com/mapleplan/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultWorkers caps concurrent scenario projections.
const DefaultWorkers = 10

// Runner executes batches of plan projections. Every scenario goes
// through the same engine as a standalone run, so batch results match
// single-plan results exactly.
type Runner struct {
	Engine  *calculation.Engine
	Workers int
	Logger  calculation.Logger
}

// NewRunner creates a runner around an engine. A nil engine gets the
// default one.
func NewRunner(engine *calculation.Engine) *Runner {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &Runner{
		Engine:  engine,
		Workers: DefaultWorkers,
		Logger:  calculation.NopLogger{},
	}
}

// SetLogger sets the logger for the runner. If nil is provided, a no-op
// logger is used.
func (r *Runner) SetLogger(l calculation.Logger) {
	if l == nil {
		r.Logger = calculation.NopLogger{}
		return
	}
	r.Logger = l
}

// Run expands the batch and projects every scenario. Capacity violations
// are returned before any scenario runs; individual scenario failures
// are recorded in their outcome and do not abort the batch. Cancelling
// the context stops scheduling and returns the context error.
func (r *Runner) Run(ctx context.Context, b *domain.BatchInput) (*domain.BatchResult, error) {
	plans, err := Expand(b)
	if err != nil {
		return nil, err
	}
	if len(plans) > domain.SoftScenarioLimit {
		r.Logger.Warnf("large batch: %d scenarios exceeds soft limit of %d", len(plans), domain.SoftScenarioLimit)
	}
	r.Logger.Infof("running batch of %d scenarios across %d variable fields", len(plans), b.VariableFieldCount())

	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	outcomes := make([]domain.ScenarioOutcome, len(plans))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i := range plans {
		if err := ctx.Err(); err != nil {
			break
		}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			outcome := domain.ScenarioOutcome{Index: idx, Input: plans[idx]}
			projection, err := r.Engine.ProjectPlan(ctx, &plans[idx])
			if err != nil {
				outcome.Error = err.Error()
			} else {
				outcome.Projection = projection
			}
			outcomes[idx] = outcome
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &domain.BatchResult{
		Scenarios: outcomes,
		Summary:   summarize(outcomes),
	}, nil
}

func summarize(outcomes []domain.ScenarioOutcome) domain.BatchSummary {
	summary := domain.BatchSummary{Total: len(outcomes), BestIndex: -1, WorstIndex: -1}
	sum := decimal.Zero
	for i := range outcomes {
		o := &outcomes[i]
		if o.Projection == nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		if o.Projection.Success {
			summary.FundedCount++
		}
		balance := o.Projection.FinalBalance
		sum = sum.Add(balance)
		if summary.BestIndex < 0 || balance.GreaterThan(summary.BestFinalBalance) {
			summary.BestFinalBalance = balance
			summary.BestIndex = o.Index
		}
		if summary.WorstIndex < 0 || balance.LessThan(summary.WorstFinalBalance) {
			summary.WorstFinalBalance = balance
			summary.WorstIndex = o.Index
		}
	}
	if summary.Succeeded > 0 {
		summary.AverageFinalBalance = sum.Div(decimal.NewFromInt(int64(summary.Succeeded)))
	}
	return summary
}
