package finance

// Analysis is the comprehensive metrics report, shaped for direct
// serialization by the calling layer.
type Analysis struct {
	CashFlow      CashFlowAnalysis    `json:"cash_flow_analysis"`
	Profitability ProfitabilityRatios `json:"profitability_ratios"`
	Risk          RiskRatios          `json:"risk_metrics"`
	Loan          LoanAnalysis        `json:"loan_analysis"`
}

type CashFlowAnalysis struct {
	MonthlyCashFlow      float64 `json:"monthly_cash_flow"`
	AnnualCashFlow       float64 `json:"annual_cash_flow"`
	MonthlyPayment       float64 `json:"monthly_payment"`
	TotalMonthlyExpenses float64 `json:"total_monthly_expenses"`
	NetOperatingIncome   float64 `json:"net_operating_income"`
}

type ProfitabilityRatios struct {
	CapRate             float64 `json:"cap_rate"`
	CashOnCashReturn    float64 `json:"cash_on_cash_return"`
	ROI                 float64 `json:"roi"`
	GrossRentMultiplier float64 `json:"gross_rent_multiplier"`
}

type RiskRatios struct {
	DSCR           float64 `json:"dscr"`
	BreakEvenRatio float64 `json:"break_even_ratio"`
	LoanToValue    float64 `json:"loan_to_value"`
}

type LoanAnalysis struct {
	AnnualPrincipalPaydown float64 `json:"annual_principal_paydown"`
	AnnualInterestPayment  float64 `json:"annual_interest_payment"`
	LoanAmount             float64 `json:"loan_amount"`
	InterestRate           float64 `json:"interest_rate"`
}

// Comprehensive evaluates every metric against the snapshot. Calling it
// repeatedly on the same snapshot yields identical results.
func (c *Calculator) Comprehensive() Analysis {
	return Analysis{
		CashFlow: CashFlowAnalysis{
			MonthlyCashFlow:      c.MonthlyCashFlow(),
			AnnualCashFlow:       c.AnnualCashFlow(),
			MonthlyPayment:       c.MonthlyPayment(),
			TotalMonthlyExpenses: c.TotalMonthlyExpenses(),
			NetOperatingIncome:   c.NOI(),
		},
		Profitability: ProfitabilityRatios{
			CapRate:             c.CapRate(),
			CashOnCashReturn:    c.CashOnCashReturn(),
			ROI:                 c.ROI(),
			GrossRentMultiplier: c.GrossRentMultiplier(),
		},
		Risk: RiskRatios{
			DSCR:           c.DSCR(),
			BreakEvenRatio: c.BreakEvenRatio(),
			LoanToValue:    c.p.LoanToValueRatio,
		},
		Loan: LoanAnalysis{
			AnnualPrincipalPaydown: c.AnnualPrincipalPaydown(),
			AnnualInterestPayment:  c.AnnualInterestPayment(),
			LoanAmount:             c.p.LoanAmount,
			InterestRate:           c.p.InterestRate,
		},
	}
}
