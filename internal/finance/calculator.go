package finance

import (
	"math"

	"property-risk/internal/model"
)

// Calculator derives point-in-time financial ratios from a property snapshot.
// All methods are pure given the snapshot taken at construction; the caller's
// profile is copied and never touched afterwards.
//
// Money-valued outputs round half-up to 2 decimal places, ratios to 3.
type Calculator struct {
	p model.PropertyProfile
}

// NewCalculator validates the profile and snapshots it.
func NewCalculator(p *model.PropertyProfile) (*Calculator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{p: *p}, nil
}

// Profile returns a copy of the snapshot the calculator works on.
func (c *Calculator) Profile() model.PropertyProfile {
	return c.p
}

// MonthlyPayment is the amortizing principal+interest payment:
// M = P * [r(1+r)^n] / [(1+r)^n - 1] with r the monthly rate.
// A zero rate degenerates to straight-line principal repayment.
func (c *Calculator) MonthlyPayment() float64 {
	principal := c.p.LoanAmount
	monthlyRate := c.p.InterestRate / 100 / 12
	numPayments := float64(c.p.LoanTermYears * 12)

	if monthlyRate == 0 {
		return principal / numPayments
	}

	compound := math.Pow(1+monthlyRate, numPayments)
	payment := principal * (monthlyRate * compound) / (compound - 1)
	return round2(payment)
}

// TotalMonthlyExpenses sums the recurring operating categories.
// Closing costs are excluded; they count toward invested capital.
func (c *Calculator) TotalMonthlyExpenses() float64 {
	return round2(c.p.Expenses.MonthlyTotal())
}

// MonthlyCashFlow = rent - payment - expenses. May be negative.
func (c *Calculator) MonthlyCashFlow() float64 {
	return round2(c.p.MonthlyRent - c.MonthlyPayment() - c.TotalMonthlyExpenses())
}

func (c *Calculator) AnnualCashFlow() float64 {
	return round2(c.MonthlyCashFlow() * 12)
}

// NOI is annual rent minus annual operating expenses, excluding debt
// service per standard real-estate convention.
func (c *Calculator) NOI() float64 {
	return round2(c.p.AnnualRent() - c.TotalMonthlyExpenses()*12)
}

// CapRate = NOI / purchase price, as a percent. 0 when the price is 0.
func (c *Calculator) CapRate() float64 {
	if c.p.PurchasePrice == 0 {
		return 0
	}
	return round3(c.NOI() / c.p.PurchasePrice * 100)
}

// CashOnCashReturn = annual cash flow / cash invested, as a percent.
// 0 when no cash was invested.
func (c *Calculator) CashOnCashReturn() float64 {
	invested := c.p.CashInvested()
	if invested == 0 {
		return 0
	}
	return round3(c.AnnualCashFlow() / invested * 100)
}

// ROI = (annual cash flow + principal paydown) / cash invested, as a
// percent. Appreciation is deliberately excluded.
func (c *Calculator) ROI() float64 {
	invested := c.p.CashInvested()
	if invested == 0 {
		return 0
	}
	return round3((c.AnnualCashFlow() + c.AnnualPrincipalPaydown()) / invested * 100)
}

// AnnualInterestPayment is a first-year approximation: loan balance times
// the annual rate, not a true amortization schedule.
func (c *Calculator) AnnualInterestPayment() float64 {
	return round2(c.p.LoanAmount * c.p.InterestRate / 100)
}

// AnnualPrincipalPaydown follows from the same first-year approximation.
func (c *Calculator) AnnualPrincipalPaydown() float64 {
	return round2(c.MonthlyPayment()*12 - c.AnnualInterestPayment())
}

// DSCR = NOI / annual debt service. 0 when there is no debt service.
func (c *Calculator) DSCR() float64 {
	debtService := c.MonthlyPayment() * 12
	if debtService == 0 {
		return 0
	}
	return round3(c.NOI() / debtService)
}

// BreakEvenRatio = (payment + expenses) / rent. 0 when rent is 0.
func (c *Calculator) BreakEvenRatio() float64 {
	if c.p.MonthlyRent == 0 {
		return 0
	}
	return round3((c.MonthlyPayment() + c.TotalMonthlyExpenses()) / c.p.MonthlyRent)
}

// GrossRentMultiplier = purchase price / annual rent. 0 when rent is 0.
func (c *Calculator) GrossRentMultiplier() float64 {
	annualRent := c.p.AnnualRent()
	if annualRent == 0 {
		return 0
	}
	return round2(c.p.PurchasePrice / annualRent)
}

// round2 and round3 use half-up rounding (math.Round rounds half away
// from zero). All money outputs use round2, ratios round3.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
