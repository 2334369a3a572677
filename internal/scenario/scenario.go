// Package scenario runs named what-if comparisons: each scenario overlays
// parameter overrides onto a base simulation config and is evaluated as its
// own immutable derived config. The base config is never modified.
package scenario

import (
	"context"
	"fmt"
	"sort"

	"property-risk/internal/model"
	"property-risk/internal/montecarlo"
)

// Scenario names a set of parameter overrides, e.g.
// {"recession": {"rent_growth_range": [-0.02, 0.01]}}.
type Scenario struct {
	Name      string         `json:"name"`
	Overrides map[string]any `json:"overrides"`
}

// Outcome is the condensed per-scenario readout.
type Outcome struct {
	Rank              int     `json:"rank"`
	Name              string  `json:"name"`
	ExpectedReturn    float64 `json:"expected_return"`
	ProbabilityOfLoss float64 `json:"probability_of_loss"`
	ValueAtRisk5      float64 `json:"value_at_risk_5"`
}

// maxTrials caps scenario runs for speed; comparisons need a stable mean,
// not the full production trial count.
const maxTrials = 1000

// Run evaluates every scenario against the profile and returns outcomes
// ranked descending by expected return.
func Run(ctx context.Context, engine *montecarlo.Engine, profile *model.PropertyProfile, base montecarlo.Config, scenarios []Scenario) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(scenarios))

	for _, sc := range scenarios {
		derived, err := montecarlo.Merge(base, sc.Overrides)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		if derived.Simulations > maxTrials {
			derived.Simulations = maxTrials
		}

		res, err := engine.Run(ctx, profile, derived)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}

		outcomes = append(outcomes, Outcome{
			Name:              sc.Name,
			ExpectedReturn:    res.Statistics.TotalReturns.Mean,
			ProbabilityOfLoss: res.RiskMetrics.ProbabilityOfLoss,
			ValueAtRisk5:      res.RiskMetrics.ValueAtRisk5,
		})
	}

	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].ExpectedReturn > outcomes[j].ExpectedReturn
	})
	for i := range outcomes {
		outcomes[i].Rank = i + 1
	}
	return outcomes, nil
}
