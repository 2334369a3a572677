package finance

import (
	"fmt"

	"property-risk/internal/model"
)

// UnknownFieldError reports a sensitivity request for a field that is
// absent (or zero) on the profile.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown or empty field for sensitivity analysis: %s", e.Field)
}

// sensitivityFields maps field names to accessors on a profile copy.
// Term length is excluded: scaling a whole-year term by a fraction is
// not meaningful.
var sensitivityFields = map[string]struct {
	get func(*model.PropertyProfile) float64
	set func(*model.PropertyProfile, float64)
}{
	"purchase_price": {
		get: func(p *model.PropertyProfile) float64 { return p.PurchasePrice },
		set: func(p *model.PropertyProfile, v float64) { p.PurchasePrice = v },
	},
	"down_payment": {
		get: func(p *model.PropertyProfile) float64 { return p.DownPayment },
		set: func(p *model.PropertyProfile, v float64) { p.DownPayment = v },
	},
	"loan_amount": {
		get: func(p *model.PropertyProfile) float64 { return p.LoanAmount },
		set: func(p *model.PropertyProfile, v float64) { p.LoanAmount = v },
	},
	"interest_rate": {
		get: func(p *model.PropertyProfile) float64 { return p.InterestRate },
		set: func(p *model.PropertyProfile, v float64) { p.InterestRate = v },
	},
	"monthly_rent": {
		get: func(p *model.PropertyProfile) float64 { return p.MonthlyRent },
		set: func(p *model.PropertyProfile, v float64) { p.MonthlyRent = v },
	},
}

// SensitivityPoint holds the key metrics at one multiplier.
type SensitivityPoint struct {
	Multiplier float64 `json:"multiplier"`
	Value      float64 `json:"value"`
	CashFlow   float64 `json:"cash_flow"`
	CapRate    float64 `json:"cap_rate"`
	CoCReturn  float64 `json:"coc_return"`
}

// Sensitivity recomputes {cash flow, cap rate, cash-on-cash} with the named
// field scaled to 1-rangeFrac, 1, and 1+rangeFrac. Each point evaluates a
// private profile copy; the calculator's snapshot is never modified.
func (c *Calculator) Sensitivity(field string, rangeFrac float64) ([]SensitivityPoint, error) {
	acc, ok := sensitivityFields[field]
	if !ok {
		return nil, &UnknownFieldError{Field: field}
	}
	base := acc.get(&c.p)
	if base == 0 {
		return nil, &UnknownFieldError{Field: field}
	}

	points := make([]SensitivityPoint, 0, 3)
	for _, mult := range []float64{1 - rangeFrac, 1, 1 + rangeFrac} {
		scenario := c.p // copy-on-call, no restore needed
		acc.set(&scenario, base*mult)
		sc := &Calculator{p: scenario}
		points = append(points, SensitivityPoint{
			Multiplier: mult,
			Value:      base * mult,
			CashFlow:   sc.MonthlyCashFlow(),
			CapRate:    sc.CapRate(),
			CoCReturn:  sc.CashOnCashReturn(),
		})
	}
	return points, nil
}
