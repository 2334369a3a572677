package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"property-risk/internal/model"
)

// Generates sample property JSON files for exercising the CLI and API.
// Prices, rents and expenses are drawn from realistic bands so the
// resulting profiles validate cleanly.
func main() {
	var (
		count     = flag.Int("count", 10, "Number of property files to generate")
		outputDir = flag.String("output", "testdata/properties", "Output directory")
		seed      = flag.Int64("seed", 1, "Seed for reproducible generation")
	)
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // G404: test data generation, not crypto

	for i := 0; i < *count; i++ {
		profile, err := randomProfile(rng)
		if err != nil {
			log.Fatalf("Failed to build profile: %v", err)
		}

		path := filepath.Join(*outputDir, fmt.Sprintf("property_%03d.json", i+1))
		if err := writeJSON(path, profile); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
	}

	fmt.Printf("Wrote %d property files to %s\n", *count, *outputDir)
}

func randomProfile(rng *rand.Rand) (*model.PropertyProfile, error) {
	price := round(150000+rng.Float64()*450000, 1000)
	downFrac := 0.15 + rng.Float64()*0.15
	down := round(price*downFrac, 500)
	loan := price - down

	// Monthly rent loosely tracks the 0.6%-1.0% rule.
	rent := round(price*(0.006+rng.Float64()*0.004), 25)

	terms := []int{15, 20, 30}
	term := terms[rng.Intn(len(terms))]

	return model.NewProperty(model.PropertyProfile{
		PurchasePrice: price,
		DownPayment:   down,
		LoanAmount:    loan,
		InterestRate:  round(4.5+rng.Float64()*3.5, 0.125),
		LoanTermYears: term,
		MonthlyRent:   rent,
		Expenses: model.Expenses{
			PropertyTax:        round(price*0.012/12, 5),
			Insurance:          round(60+rng.Float64()*120, 5),
			Maintenance:        round(rent*0.05, 5),
			VacancyAllowance:   round(rent*0.05, 5),
			PropertyManagement: round(rent*(0.08+rng.Float64()*0.02), 5),
			HOAFees:            round(rng.Float64()*150, 5),
			OtherExpenses:      round(rng.Float64()*100, 5),
			ClosingCosts:       round(price*0.02, 100),
		},
	})
}

func round(x, step float64) float64 {
	return float64(int(x/step+0.5)) * step
}

func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}
