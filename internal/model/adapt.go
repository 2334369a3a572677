package model

import "fmt"

// Record is anything the caller's storage layer can flatten to named fields.
// Database rows and API payloads both satisfy it via a ToMap method.
type Record interface {
	ToMap() map[string]any
}

// Expense categories recognized in a "monthly_expenses" mapping.
// Unrecognized categories are ignored; missing ones default to zero.
var expenseKeys = map[string]func(*Expenses, float64){
	"property_tax":        func(e *Expenses, v float64) { e.PropertyTax = v },
	"insurance":           func(e *Expenses, v float64) { e.Insurance = v },
	"maintenance":         func(e *Expenses, v float64) { e.Maintenance = v },
	"vacancy_allowance":   func(e *Expenses, v float64) { e.VacancyAllowance = v },
	"property_management": func(e *Expenses, v float64) { e.PropertyManagement = v },
	"hoa_fees":            func(e *Expenses, v float64) { e.HOAFees = v },
	"other_expenses":      func(e *Expenses, v float64) { e.OtherExpenses = v },
	"closing_costs":       func(e *Expenses, v float64) { e.ClosingCosts = v },
}

// FromMap builds a validated profile from a plain field mapping, the shape
// handed over by the property-storage collaborator. Required fields must be
// present; unknown keys are ignored.
func FromMap(m map[string]any) (*PropertyProfile, error) {
	if m == nil {
		return nil, &MissingFieldError{Field: "purchase_price"}
	}

	var p PropertyProfile

	required := []struct {
		key string
		set func(float64)
	}{
		{"purchase_price", func(v float64) { p.PurchasePrice = v }},
		{"down_payment", func(v float64) { p.DownPayment = v }},
		{"loan_amount", func(v float64) { p.LoanAmount = v }},
		{"interest_rate", func(v float64) { p.InterestRate = v }},
		{"loan_term_years", func(v float64) { p.LoanTermYears = int(v) }},
		{"monthly_rent", func(v float64) { p.MonthlyRent = v }},
	}
	for _, r := range required {
		raw, ok := m[r.key]
		if !ok {
			return nil, &MissingFieldError{Field: r.key}
		}
		v, err := toFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", r.key, err)
		}
		r.set(v)
	}

	if name, ok := m["name"].(string); ok {
		p.Name = name
	}
	if raw, ok := m["loan_to_value_ratio"]; ok {
		if v, err := toFloat(raw); err == nil {
			p.LoanToValueRatio = v
		}
	}
	if raw, ok := m["monthly_expenses"]; ok {
		exp, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field monthly_expenses: expected a mapping, got %T", raw)
		}
		for key, val := range exp {
			set, recognized := expenseKeys[key]
			if !recognized {
				continue
			}
			v, err := toFloat(val)
			if err != nil {
				return nil, fmt.Errorf("expense %s: %w", key, err)
			}
			set(&p.Expenses, v)
		}
	}

	return NewProperty(p)
}

// FromRecord adapts any field-access-capable object to a validated profile.
func FromRecord(r Record) (*PropertyProfile, error) {
	if r == nil {
		return nil, &MissingFieldError{Field: "purchase_price"}
	}
	return FromMap(r.ToMap())
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
