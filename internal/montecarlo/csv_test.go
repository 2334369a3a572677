package montecarlo

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTrialsCSV(t *testing.T) {
	trials := []TrialOutcome{
		{
			AnnualCashFlows:    []float64{100.5, -200.25, 300},
			CumulativeCashFlow: 200.25,
			TotalReturn:        -5000,
			FinalPropertyValue: 327818.1,
			IRR:                -3.2,
			WorstYearCashFlow:  -200.25,
			BestYearCashFlow:   300,
		},
		{
			AnnualCashFlows:    []float64{1, 2, 3},
			CumulativeCashFlow: 6,
			TotalReturn:        10,
			FinalPropertyValue: 310000,
			IRR:                1.5,
			WorstYearCashFlow:  1,
			BestYearCashFlow:   3,
		},
	}

	path := filepath.Join(t.TempDir(), "trials.csv")
	require.NoError(t, WriteTrialsCSV(path, trials))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"trial", "cumulative_cash_flow", "total_return", "final_property_value",
		"irr", "worst_year_cash_flow", "best_year_cash_flow",
		"year_1", "year_2", "year_3",
	}, rows[0])

	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "200.25", rows[1][1])
	assert.Equal(t, "-200.25", rows[1][8])
	assert.Equal(t, "1", rows[2][0])
	assert.Equal(t, "310000.00", rows[2][3])
}

func TestWriteTrialsCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteTrialsCSV(path, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 7)
}

func TestWriteTrialsCSV_BadPath(t *testing.T) {
	err := WriteTrialsCSV(filepath.Join(t.TempDir(), "missing", "trials.csv"), nil)
	assert.Error(t, err)
}
