package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMap() map[string]any {
	return map[string]any{
		"purchase_price":  300000.0,
		"down_payment":    60000.0,
		"loan_amount":     240000.0,
		"interest_rate":   6.5,
		"loan_term_years": 30,
		"monthly_rent":    2500.0,
		"monthly_expenses": map[string]any{
			"property_tax":        300.0,
			"insurance":           100.0,
			"maintenance":         150.0,
			"property_management": 125.0,
			"hoa_fees":            50.0,
			"other_expenses":      50.0,
		},
	}
}

func TestFromMap_Valid(t *testing.T) {
	p, err := FromMap(validMap())
	require.NoError(t, err)
	assert.Equal(t, 300000.0, p.PurchasePrice)
	assert.Equal(t, 30, p.LoanTermYears)
	assert.Equal(t, 775.0, p.Expenses.MonthlyTotal())
}

func TestFromMap_MissingFieldNamesTheField(t *testing.T) {
	m := validMap()
	delete(m, "interest_rate")
	_, err := FromMap(m)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "interest_rate", missing.Field)
}

func TestFromMap_NilMap(t *testing.T) {
	_, err := FromMap(nil)
	var missing *MissingFieldError
	assert.ErrorAs(t, err, &missing)
}

func TestFromMap_UnrecognizedExpenseIgnored(t *testing.T) {
	m := validMap()
	m["monthly_expenses"].(map[string]any)["landscaping"] = 999.0
	p, err := FromMap(m)
	require.NoError(t, err)
	assert.Equal(t, 775.0, p.Expenses.MonthlyTotal())
}

func TestFromMap_UnknownTopLevelKeyIgnored(t *testing.T) {
	m := validMap()
	m["zip_code"] = "97201"
	_, err := FromMap(m)
	assert.NoError(t, err)
}

func TestFromMap_NonNumericField(t *testing.T) {
	m := validMap()
	m["monthly_rent"] = "2500"
	_, err := FromMap(m)
	assert.Error(t, err)
}

func TestFromMap_IntValuesAccepted(t *testing.T) {
	m := validMap()
	m["purchase_price"] = 300000
	m["monthly_rent"] = int64(2500)
	p, err := FromMap(m)
	require.NoError(t, err)
	assert.Equal(t, 300000.0, p.PurchasePrice)
	assert.Equal(t, 2500.0, p.MonthlyRent)
}

type mapRecord map[string]any

func (r mapRecord) ToMap() map[string]any { return r }

func TestFromRecord(t *testing.T) {
	p, err := FromRecord(mapRecord(validMap()))
	require.NoError(t, err)
	assert.Equal(t, 60000.0, p.DownPayment)

	_, err = FromRecord(nil)
	assert.Error(t, err)
}
