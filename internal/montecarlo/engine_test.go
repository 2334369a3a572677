package montecarlo

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-risk/internal/model"
)

func testProfile() *model.PropertyProfile {
	return &model.PropertyProfile{
		PurchasePrice: 300000,
		DownPayment:   60000,
		LoanAmount:    240000,
		InterestRate:  6.5,
		LoanTermYears: 30,
		MonthlyRent:   2500,
		Expenses: model.Expenses{
			PropertyTax:        300,
			Insurance:          100,
			Maintenance:        150,
			PropertyManagement: 125,
			HOAFees:            50,
			OtherExpenses:      50,
		},
	}
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Simulations = 200
	cfg.Years = 5
	cfg.Seed = 42
	return cfg
}

func TestRun_Shapes(t *testing.T) {
	res, err := New().Run(context.Background(), testProfile(), smallConfig())
	require.NoError(t, err)

	require.NotNil(t, res.Raw)
	assert.Len(t, res.Raw.TotalReturns, 200)
	assert.Len(t, res.Raw.CumulativeCashFlows, 200)
	assert.Len(t, res.Raw.IRRValues, 200)
	assert.Len(t, res.Raw.AnnualCashFlows, 200)
	for _, flows := range res.Raw.AnnualCashFlows {
		assert.Len(t, flows, 5)
	}

	assert.GreaterOrEqual(t, res.RiskMetrics.ProbabilityOfLoss, 0.0)
	assert.LessOrEqual(t, res.RiskMetrics.ProbabilityOfLoss, 1.0)
	assert.GreaterOrEqual(t, res.RiskMetrics.ProbabilityOfNegativeCashFlow, 0.0)
	assert.LessOrEqual(t, res.RiskMetrics.ProbabilityOfNegativeCashFlow, 1.0)

	// VaR ordering: the 5th percentile sits at or below the 10th.
	assert.LessOrEqual(t, res.RiskMetrics.ValueAtRisk5, res.RiskMetrics.ValueAtRisk10)
	// Expected shortfall averages the tail below VaR.
	assert.LessOrEqual(t, res.RiskMetrics.ExpectedShortfall5, res.RiskMetrics.ValueAtRisk5)

	assert.Equal(t, res.Statistics.TotalReturns.Mean, res.Summary.ExpectedReturn)
	assert.Equal(t, res.Statistics.TotalReturns.Percentiles.P95, res.Summary.BestCaseScenario)
	assert.Equal(t, res.Statistics.TotalReturns.Percentiles.P5, res.Summary.WorstCaseScenario)
	assert.NotEmpty(t, res.Summary.RiskLevel)
	assert.NotEmpty(t, res.Summary.Recommendation)
}

func TestRun_SameSeedReproduces(t *testing.T) {
	a, err := New().Run(context.Background(), testProfile(), smallConfig())
	require.NoError(t, err)
	b, err := New().Run(context.Background(), testProfile(), smallConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Raw.TotalReturns, b.Raw.TotalReturns)
	assert.Equal(t, a.Raw.IRRValues, b.Raw.IRRValues)
	assert.Equal(t, a.Statistics, b.Statistics)
}

func TestRun_DifferentSeedsDiffer(t *testing.T) {
	cfg := smallConfig()
	a, err := New().Run(context.Background(), testProfile(), cfg)
	require.NoError(t, err)

	cfg.Seed = 43
	b, err := New().Run(context.Background(), testProfile(), cfg)
	require.NoError(t, err)

	assert.NotEqual(t, a.Raw.TotalReturns, b.Raw.TotalReturns)
}

func TestRun_WorkerCountDoesNotChangeResults(t *testing.T) {
	serial := &Engine{Workers: 1, solver: New().solver}
	parallel := &Engine{Workers: 8, solver: New().solver}

	a, err := serial.Run(context.Background(), testProfile(), smallConfig())
	require.NoError(t, err)
	b, err := parallel.Run(context.Background(), testProfile(), smallConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Raw.TotalReturns, b.Raw.TotalReturns)
	assert.Equal(t, a.Raw.AnnualCashFlows, b.Raw.AnnualCashFlows)
}

func TestRun_DegenerateConfigIsDeterministic(t *testing.T) {
	cfg := Config{
		Simulations:            50,
		Years:                  3,
		RentGrowthRange:        Range{Min: 0.03, Max: 0.03},
		VacancyRateRange:       Range{Min: 0.10, Max: 0.10},
		AppreciationRange:      Range{Min: 0.03, Max: 0.03},
		ExpenseVolatility:      0,
		MajorRepairProbability: 0,
		MajorRepairCostRange:   Range{Min: 5000, Max: 15000},
		RiskFreeRate:           0.03,
		Seed:                   1,
	}

	res, err := New().Run(context.Background(), testProfile(), cfg)
	require.NoError(t, err)

	// Every trial followed the same trajectory.
	first := res.Raw.TotalReturns[0]
	for _, r := range res.Raw.TotalReturns {
		assert.Equal(t, first, r)
	}
	assert.Equal(t, 0.0, res.Statistics.TotalReturns.Std)
	assert.False(t, math.IsNaN(res.Statistics.IRRValues.Std))
	assert.Equal(t, 0.0, res.RiskMetrics.SharpeRatio)

	// Hand-computed trajectory for the fixed rates.
	assert.InDelta(t, 3447.37, res.Raw.CumulativeCashFlows[0], 0.05)
	assert.InDelta(t, 327818.10, res.Raw.FinalPropertyValues[0], 0.05)
	assert.InDelta(t, -28734.53, res.Raw.TotalReturns[0], 0.05)
}

func TestRun_RepairProbabilityLowersReturns(t *testing.T) {
	base := smallConfig()
	base.MajorRepairProbability = 0

	worn := smallConfig()
	worn.MajorRepairProbability = 1

	a, err := New().Run(context.Background(), testProfile(), base)
	require.NoError(t, err)
	b, err := New().Run(context.Background(), testProfile(), worn)
	require.NoError(t, err)

	assert.Greater(t, a.Statistics.CumulativeCashFlows.Mean, b.Statistics.CumulativeCashFlows.Mean)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Simulations = 0
	_, err := New().Run(context.Background(), testProfile(), cfg)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRun_InvalidProfile(t *testing.T) {
	p := testProfile()
	p.MonthlyRent = 0
	_, err := New().Run(context.Background(), p, smallConfig())
	var missing *model.MissingFieldError
	assert.ErrorAs(t, err, &missing)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := smallConfig()
	cfg.Simulations = 10000
	_, err := New().Run(ctx, testProfile(), cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrials_RoundTripsRawVectors(t *testing.T) {
	res, err := New().Run(context.Background(), testProfile(), smallConfig())
	require.NoError(t, err)

	trials := res.Raw.Trials()
	require.Len(t, trials, 200)
	assert.Equal(t, res.Raw.TotalReturns[7], trials[7].TotalReturn)
	assert.Equal(t, res.Raw.IRRValues[7], trials[7].IRR)
	assert.Equal(t, res.Raw.AnnualCashFlows[7], trials[7].AnnualCashFlows)
}
