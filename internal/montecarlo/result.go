package montecarlo

import (
	"property-risk/internal/model"
	"property-risk/internal/stats"
)

// TrialOutcome is what one simulated trajectory produced.
type TrialOutcome struct {
	AnnualCashFlows    []float64 `json:"annual_cash_flows"`
	CumulativeCashFlow float64   `json:"cumulative_cash_flow"`
	TotalReturn        float64   `json:"total_return"`
	FinalPropertyValue float64   `json:"final_property_value"`
	IRR                float64   `json:"internal_rate_of_return"`
	WorstYearCashFlow  float64   `json:"worst_year_cash_flow"`
	BestYearCashFlow   float64   `json:"best_year_cash_flow"`
}

// RawResults holds the per-trial vectors, one entry per trial.
// These can be large; callers decide whether to retain or serialize them.
type RawResults struct {
	AnnualCashFlows     [][]float64 `json:"annual_cash_flows"`
	CumulativeCashFlows []float64   `json:"cumulative_cash_flows"`
	TotalReturns        []float64   `json:"total_returns"`
	FinalPropertyValues []float64   `json:"final_property_values"`
	IRRValues           []float64   `json:"irr_values"`
	WorstYearCashFlows  []float64   `json:"worst_year_cash_flows"`
	BestYearCashFlows   []float64   `json:"best_year_cash_flows"`
}

// Statistics carries one Summary per scalar metric. The key set is fixed
// regardless of input; a degenerate run reports std 0 everywhere.
type Statistics struct {
	CumulativeCashFlows stats.Summary `json:"cumulative_cash_flows"`
	TotalReturns        stats.Summary `json:"total_returns"`
	FinalPropertyValues stats.Summary `json:"final_property_values"`
	IRRValues           stats.Summary `json:"irr_values"`
	WorstYearCashFlows  stats.Summary `json:"worst_year_cash_flows"`
	BestYearCashFlows   stats.Summary `json:"best_year_cash_flows"`
}

type RiskMetrics struct {
	ProbabilityOfLoss             float64 `json:"probability_of_loss"`
	ProbabilityOfNegativeCashFlow float64 `json:"probability_of_negative_cash_flow"`
	ValueAtRisk5                  float64 `json:"value_at_risk_5"`
	ValueAtRisk10                 float64 `json:"value_at_risk_10"`
	ExpectedShortfall5            float64 `json:"expected_shortfall_5"`
	SharpeRatio                   float64 `json:"sharpe_ratio"`
	CoefficientOfVariation        float64 `json:"coefficient_of_variation"`
}

// Summary is the executive verdict derived from the distribution.
type Summary struct {
	RiskLevel            model.RiskLevel      `json:"risk_level"`
	Recommendation       model.Recommendation `json:"recommendation"`
	ExpectedReturn       float64              `json:"expected_return"`
	ProbabilityOfLoss    float64              `json:"probability_of_loss"`
	BestCaseScenario     float64              `json:"best_case_scenario"`
	WorstCaseScenario    float64              `json:"worst_case_scenario"`
	ConfidenceInterval80 [2]float64           `json:"confidence_interval_80"`
}

// Result is the full output of one simulation run, shaped for direct
// serialization by the calling layer.
type Result struct {
	Parameters  Config      `json:"simulation_parameters"`
	Raw         *RawResults `json:"raw_results,omitempty"`
	Statistics  Statistics  `json:"statistics"`
	RiskMetrics RiskMetrics `json:"risk_metrics"`
	Summary     Summary     `json:"summary"`
}
