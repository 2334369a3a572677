package montecarlo

import (
	"property-risk/internal/model"
	"property-risk/internal/stats"
)

// summarize reduces every scalar metric vector. The 2-D annual cash-flow
// matrix is kept raw only.
func summarize(raw *RawResults) Statistics {
	return Statistics{
		CumulativeCashFlows: stats.Describe(raw.CumulativeCashFlows),
		TotalReturns:        stats.Describe(raw.TotalReturns),
		FinalPropertyValues: stats.Describe(raw.FinalPropertyValues),
		IRRValues:           stats.Describe(raw.IRRValues),
		WorstYearCashFlows:  stats.Describe(raw.WorstYearCashFlows),
		BestYearCashFlows:   stats.Describe(raw.BestYearCashFlows),
	}
}

func assessRisk(raw *RawResults, cfg Config) RiskMetrics {
	returns := raw.TotalReturns
	n := float64(len(returns))

	var losses, negativeCF int
	for _, r := range returns {
		if r < 0 {
			losses++
		}
	}
	for _, cf := range raw.CumulativeCashFlows {
		if cf < 0 {
			negativeCF++
		}
	}

	var5 := stats.Percentile(returns, 0.05)
	var10 := stats.Percentile(returns, 0.10)

	return RiskMetrics{
		ProbabilityOfLoss:             float64(losses) / n,
		ProbabilityOfNegativeCashFlow: float64(negativeCF) / n,
		ValueAtRisk5:                  var5,
		ValueAtRisk10:                 var10,
		ExpectedShortfall5:            expectedShortfall(returns, var5),
		SharpeRatio:                   sharpeRatio(returns, cfg.RiskFreeRate),
		CoefficientOfVariation:        coefficientOfVariation(returns),
	}
}

// expectedShortfall averages the tail at or below the VaR threshold.
// A degenerate empty tail collapses to the threshold itself.
func expectedShortfall(returns []float64, threshold float64) float64 {
	var sum float64
	var count int
	for _, r := range returns {
		if r <= threshold {
			sum += r
			count++
		}
	}
	if count == 0 {
		return threshold
	}
	return sum / float64(count)
}

func sharpeRatio(returns []float64, riskFreeRate float64) float64 {
	excess := make([]float64, len(returns))
	for i, r := range returns {
		excess[i] = r - riskFreeRate
	}
	std := stats.PopStdDev(excess)
	if std == 0 {
		return 0
	}
	return stats.Mean(excess) / std
}

func coefficientOfVariation(returns []float64) float64 {
	mean := stats.Mean(returns)
	if mean == 0 {
		return 0
	}
	return stats.PopStdDev(returns) / mean
}

func buildSummary(statistics Statistics, risk RiskMetrics) Summary {
	totalReturns := statistics.TotalReturns
	return Summary{
		RiskLevel:         model.RiskLevelFromProbability(risk.ProbabilityOfLoss),
		Recommendation:    model.RecommendationFor(totalReturns.Mean, risk.ProbabilityOfLoss),
		ExpectedReturn:    totalReturns.Mean,
		ProbabilityOfLoss: risk.ProbabilityOfLoss,
		BestCaseScenario:  totalReturns.Percentiles.P95,
		WorstCaseScenario: totalReturns.Percentiles.P5,
		ConfidenceInterval80: [2]float64{
			totalReturns.Percentiles.P10,
			totalReturns.Percentiles.P90,
		},
	}
}
