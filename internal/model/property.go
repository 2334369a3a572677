package model

import (
	"errors"
	"fmt"
)

// Expenses is the monthly operating-expense breakdown for a property.
// All amounts are monthly dollars except ClosingCosts, which is a one-time
// amount counted toward invested capital rather than operating expenses.
type Expenses struct {
	PropertyTax        float64 `json:"property_tax"`
	Insurance          float64 `json:"insurance"`
	Maintenance        float64 `json:"maintenance"`
	VacancyAllowance   float64 `json:"vacancy_allowance"`
	PropertyManagement float64 `json:"property_management"`
	HOAFees            float64 `json:"hoa_fees"`
	OtherExpenses      float64 `json:"other_expenses"`
	ClosingCosts       float64 `json:"closing_costs"`
}

// MonthlyTotal sums the recurring monthly categories. ClosingCosts is
// excluded; it is one-time cash at purchase.
func (e Expenses) MonthlyTotal() float64 {
	return e.PropertyTax + e.Insurance + e.Maintenance + e.VacancyAllowance +
		e.PropertyManagement + e.HOAFees + e.OtherExpenses
}

// PropertyProfile describes a candidate single-family purchase.
// Units:
// - Prices and rents: dollars
// - InterestRate: annual nominal percent (6.5 means 6.5%)
// - LoanTermYears: whole years
type PropertyProfile struct {
	Name string `json:"name,omitempty"`

	PurchasePrice float64 `json:"purchase_price"`
	DownPayment   float64 `json:"down_payment"`
	LoanAmount    float64 `json:"loan_amount"`
	InterestRate  float64 `json:"interest_rate"`
	LoanTermYears int     `json:"loan_term_years"`
	MonthlyRent   float64 `json:"monthly_rent"`

	// LoanToValueRatio is optional, supplied by the caller's storage layer.
	LoanToValueRatio float64 `json:"loan_to_value_ratio,omitempty"`

	Expenses Expenses `json:"monthly_expenses"`
}

// MissingFieldError reports a required property field that was absent
// (or zero where a positive value is required).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// NewProperty validates a profile and returns a copy.
func NewProperty(p PropertyProfile) (*PropertyProfile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *PropertyProfile) Validate() error {
	if p == nil {
		return errors.New("property is nil")
	}
	// Positive monetary amounts and term; a zero here means the record is
	// incomplete, not a valid free property.
	required := []struct {
		field string
		ok    bool
	}{
		{"purchase_price", p.PurchasePrice > 0},
		{"down_payment", p.DownPayment > 0},
		{"loan_amount", p.LoanAmount > 0},
		{"loan_term_years", p.LoanTermYears > 0},
		{"monthly_rent", p.MonthlyRent > 0},
	}
	for _, r := range required {
		if !r.ok {
			return &MissingFieldError{Field: r.field}
		}
	}
	if p.InterestRate < 0 {
		return errors.New("interest_rate must be >= 0")
	}
	if hasNegative(p.Expenses) {
		return errors.New("expense amounts must be >= 0")
	}
	return nil
}

func hasNegative(e Expenses) bool {
	for _, v := range []float64{
		e.PropertyTax, e.Insurance, e.Maintenance, e.VacancyAllowance,
		e.PropertyManagement, e.HOAFees, e.OtherExpenses, e.ClosingCosts,
	} {
		if v < 0 {
			return true
		}
	}
	return false
}

// CashInvested is the cash basis for return ratios:
// down payment plus one-time closing costs.
func (p PropertyProfile) CashInvested() float64 {
	return p.DownPayment + p.Expenses.ClosingCosts
}

// AnnualRent is gross scheduled rent for one year.
func (p PropertyProfile) AnnualRent() float64 {
	return p.MonthlyRent * 12
}
