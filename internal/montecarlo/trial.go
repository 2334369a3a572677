package montecarlo

import (
	"math"

	"property-risk/internal/finance"
	"property-risk/internal/irr"
)

// trialInputs are the profile-derived constants shared by every trial.
// Financing terms do not change mid-trial, so the payment is fixed once.
type trialInputs struct {
	initialRent     float64
	initialExpenses float64
	initialValue    float64
	monthlyPayment  float64
	totalInvestment float64
}

func newTrialInputs(calc *finance.Calculator) trialInputs {
	p := calc.Profile()
	return trialInputs{
		initialRent:     p.MonthlyRent,
		initialExpenses: calc.TotalMonthlyExpenses(),
		initialValue:    p.PurchasePrice,
		monthlyPayment:  calc.MonthlyPayment(),
		totalInvestment: p.CashInvested(),
	}
}

// runTrial simulates one multi-year trajectory under randomized yearly
// market conditions.
func runTrial(in trialInputs, cfg Config, src Source, solver irr.Solver) TrialOutcome {
	flows := make([]float64, cfg.Years)
	rent := in.initialRent
	value := in.initialValue

	for year := 0; year < cfg.Years; year++ {
		rentGrowth := src.Uniform(cfg.RentGrowthRange.Min, cfg.RentGrowthRange.Max)
		expenseMultiplier := src.Normal(1.0, cfg.ExpenseVolatility)
		vacancyRate := src.Uniform(cfg.VacancyRateRange.Min, cfg.VacancyRateRange.Max)
		appreciationRate := src.Uniform(cfg.AppreciationRange.Min, cfg.AppreciationRange.Max)

		var repairCost float64
		if src.Float64() < cfg.MajorRepairProbability {
			repairCost = src.Uniform(cfg.MajorRepairCostRange.Min, cfg.MajorRepairCostRange.Max)
		}

		// Rent growth compounds year over year, applied before vacancy.
		rent *= 1 + rentGrowth

		effectiveRent := rent * (1 - vacancyRate)
		// The multiplier is redrawn each year against the fixed base;
		// expense levels do not carry forward between years.
		expenses := in.initialExpenses * expenseMultiplier

		monthlyCashFlow := effectiveRent - in.monthlyPayment - expenses
		flows[year] = monthlyCashFlow*12 - repairCost

		// Property value compounds independently of rent.
		value *= 1 + appreciationRate
	}

	var cumulative float64
	worst, best := math.Inf(1), math.Inf(-1)
	for _, cf := range flows {
		cumulative += cf
		if cf < worst {
			worst = cf
		}
		if cf > best {
			best = cf
		}
	}

	appreciationGain := value - in.initialValue
	totalReturn := cumulative + appreciationGain - in.totalInvestment

	return TrialOutcome{
		AnnualCashFlows:    flows,
		CumulativeCashFlow: cumulative,
		TotalReturn:        totalReturn,
		FinalPropertyValue: value,
		IRR:                trialIRR(solver, flows, in.totalInvestment, appreciationGain),
		WorstYearCashFlow:  worst,
		BestYearCashFlow:   best,
	}
}

// trialIRR computes the internal rate of return (percent) over the series
// [-investment, flows[0..n-2], flows[n-1] + sale proceeds]. A failed root
// search falls back to the annualized-return approximation.
func trialIRR(solver irr.Solver, flows []float64, totalInvestment, appreciationGain float64) float64 {
	series := make([]float64, 0, len(flows)+1)
	series = append(series, -totalInvestment)
	series = append(series, flows[:len(flows)-1]...)
	series = append(series, flows[len(flows)-1]+appreciationGain)

	rate, err := solver.Rate(series)
	if err == nil && !math.IsNaN(rate) && !math.IsInf(rate, 0) {
		return rate * 100
	}

	var totalReturn float64
	for _, cf := range flows {
		totalReturn += cf
	}
	totalReturn += appreciationGain - totalInvestment
	return annualizedReturnPct(totalReturn, totalInvestment, len(flows))
}

// annualizedReturnPct is the documented fallback:
// ((totalReturn/investment)^(1/years) - 1) * 100. A negative ratio takes
// the signed real root so the result stays real and monotone.
func annualizedReturnPct(totalReturn, totalInvestment float64, years int) float64 {
	if totalInvestment <= 0 || years <= 0 {
		return 0
	}
	ratio := totalReturn / totalInvestment
	root := math.Copysign(math.Pow(math.Abs(ratio), 1/float64(years)), ratio)
	return (root - 1) * 100
}
