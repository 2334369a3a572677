package montecarlo

import (
	"context"
	"runtime"
	"sync"
	"time"

	"property-risk/internal/finance"
	"property-risk/internal/irr"
	"property-risk/internal/model"
)

// Engine runs the simulate -> aggregate -> summarize pipeline. Trials are
// independent and share no mutable state, so they fan out across a worker
// pool; each trial gets its own generator seeded from the base seed plus
// the trial index, making results reproducible for a fixed seed no matter
// how many workers run.
type Engine struct {
	// Workers caps the pool size; 0 means GOMAXPROCS.
	Workers int

	solver irr.Solver
}

func New() *Engine {
	return &Engine{solver: irr.NewtonSolver{}}
}

// NewWithSolver substitutes an alternate IRR solver.
func NewWithSolver(solver irr.Solver) *Engine {
	return &Engine{solver: solver}
}

// Run executes the full pipeline and returns a single Result. The config
// is validated before any trial runs. Cancellation via ctx aborts between
// trials; no shared state is left behind.
func (e *Engine) Run(ctx context.Context, profile *model.PropertyProfile, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	calc, err := finance.NewCalculator(profile)
	if err != nil {
		return nil, err
	}

	inputs := newTrialInputs(calc)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	outcomes := make([]TrialOutcome, cfg.Simulations)

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Simulations {
		workers = cfg.Simulations
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				src := NewSource(seed + int64(i))
				outcomes[i] = runTrial(inputs, cfg, src, e.solver)
			}
		}()
	}

feed:
	for i := 0; i < cfg.Simulations; i++ {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := aggregate(outcomes)
	riskMetrics := assessRisk(raw, cfg)
	statistics := summarize(raw)

	return &Result{
		Parameters:  cfg,
		Raw:         raw,
		Statistics:  statistics,
		RiskMetrics: riskMetrics,
		Summary:     buildSummary(statistics, riskMetrics),
	}, nil
}

// aggregate collects per-trial outcomes into per-metric vectors.
func aggregate(outcomes []TrialOutcome) *RawResults {
	n := len(outcomes)
	raw := &RawResults{
		AnnualCashFlows:     make([][]float64, n),
		CumulativeCashFlows: make([]float64, n),
		TotalReturns:        make([]float64, n),
		FinalPropertyValues: make([]float64, n),
		IRRValues:           make([]float64, n),
		WorstYearCashFlows:  make([]float64, n),
		BestYearCashFlows:   make([]float64, n),
	}
	for i, o := range outcomes {
		raw.AnnualCashFlows[i] = o.AnnualCashFlows
		raw.CumulativeCashFlows[i] = o.CumulativeCashFlow
		raw.TotalReturns[i] = o.TotalReturn
		raw.FinalPropertyValues[i] = o.FinalPropertyValue
		raw.IRRValues[i] = o.IRR
		raw.WorstYearCashFlows[i] = o.WorstYearCashFlow
		raw.BestYearCashFlows[i] = o.BestYearCashFlow
	}
	return raw
}

// Trials reconstructs per-trial outcomes from the raw vectors, for callers
// that want row-shaped output (CSV export, trial listings).
func (r *RawResults) Trials() []TrialOutcome {
	out := make([]TrialOutcome, len(r.TotalReturns))
	for i := range out {
		out[i] = TrialOutcome{
			AnnualCashFlows:    r.AnnualCashFlows[i],
			CumulativeCashFlow: r.CumulativeCashFlows[i],
			TotalReturn:        r.TotalReturns[i],
			FinalPropertyValue: r.FinalPropertyValues[i],
			IRR:                r.IRRValues[i],
			WorstYearCashFlow:  r.WorstYearCashFlows[i],
			BestYearCashFlow:   r.BestYearCashFlows[i],
		}
	}
	return out
}
