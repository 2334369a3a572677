package montecarlo

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-risk/internal/finance"
	"property-risk/internal/irr"
)

func TestNewTrialInputs(t *testing.T) {
	calc, err := finance.NewCalculator(testProfile())
	require.NoError(t, err)

	in := newTrialInputs(calc)
	assert.Equal(t, 2500.0, in.initialRent)
	assert.Equal(t, 775.0, in.initialExpenses)
	assert.Equal(t, 300000.0, in.initialValue)
	assert.Equal(t, 60000.0, in.totalInvestment)
	assert.InDelta(t, 1516.96, in.monthlyPayment, 0.01)
}

func TestRunTrial_WorstAndBestYears(t *testing.T) {
	calc, err := finance.NewCalculator(testProfile())
	require.NoError(t, err)

	cfg := smallConfig()
	out := runTrial(newTrialInputs(calc), cfg, NewSource(7), irr.NewtonSolver{})

	require.Len(t, out.AnnualCashFlows, cfg.Years)
	var sum float64
	for _, cf := range out.AnnualCashFlows {
		sum += cf
		assert.GreaterOrEqual(t, cf, out.WorstYearCashFlow)
		assert.LessOrEqual(t, cf, out.BestYearCashFlow)
	}
	assert.InDelta(t, sum, out.CumulativeCashFlow, 1e-9)

	gain := out.FinalPropertyValue - 300000
	assert.InDelta(t, out.CumulativeCashFlow+gain-60000, out.TotalReturn, 1e-9)
}

type failingSolver struct{}

func (failingSolver) Rate([]float64) (float64, error) { return 0, irr.ErrNoConvergence }

func TestTrialIRR_FallbackOnSolverFailure(t *testing.T) {
	flows := []float64{1000, 1000, 1000}
	got := trialIRR(failingSolver{}, flows, 60000, 27000)

	// ((3000 + 27000 - 60000) / 60000)^(1/3) with the signed root.
	totalReturn := -30000.0
	ratio := totalReturn / 60000.0
	want := (math.Copysign(math.Pow(math.Abs(ratio), 1.0/3.0), ratio) - 1) * 100
	assert.InDelta(t, want, got, 1e-9)
	assert.Less(t, got, 0.0)
}

func TestAnnualizedReturnPct(t *testing.T) {
	// Doubling the investment over 10 years is about 7.18% per year.
	assert.InDelta(t, 7.177, annualizedReturnPct(120000, 60000, 10), 0.001)
	// Guards: no investment or no elapsed years.
	assert.Equal(t, 0.0, annualizedReturnPct(1000, 0, 10))
	assert.Equal(t, 0.0, annualizedReturnPct(1000, -5, 10))
	assert.Equal(t, 0.0, annualizedReturnPct(1000, 60000, 0))
}

func TestRunTrial_SolverFailureStillProducesOutcome(t *testing.T) {
	calc, err := finance.NewCalculator(testProfile())
	require.NoError(t, err)

	out := runTrial(newTrialInputs(calc), smallConfig(), NewSource(7), failingSolver{})
	assert.False(t, math.IsNaN(out.IRR))
	assert.False(t, math.IsInf(out.IRR, 0))
}

func TestNewWithSolver(t *testing.T) {
	engine := NewWithSolver(failingSolver{})
	res, err := engine.Run(context.Background(), testProfile(), smallConfig())
	require.NoError(t, err)
	for _, v := range res.Raw.IRRValues {
		assert.False(t, math.IsNaN(v))
	}
}
