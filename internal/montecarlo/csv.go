package montecarlo

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteTrialsCSV writes one row per trial: scalar outcomes first, then a
// year_N column per simulated year.
func WriteTrialsCSV(path string, trials []TrialOutcome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	years := 0
	if len(trials) > 0 {
		years = len(trials[0].AnnualCashFlows)
	}

	header := []string{
		"trial",
		"cumulative_cash_flow",
		"total_return",
		"final_property_value",
		"irr",
		"worst_year_cash_flow",
		"best_year_cash_flow",
	}
	for y := 1; y <= years; y++ {
		header = append(header, fmt.Sprintf("year_%d", y))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range trials {
		row := []string{
			strconv.Itoa(i),
			fmtFloat(t.CumulativeCashFlow),
			fmtFloat(t.TotalReturn),
			fmtFloat(t.FinalPropertyValue),
			fmtFloat(t.IRR),
			fmtFloat(t.WorstYearCashFlow),
			fmtFloat(t.BestYearCashFlow),
		}
		for _, cf := range t.AnnualCashFlows {
			row = append(row, fmtFloat(cf))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
