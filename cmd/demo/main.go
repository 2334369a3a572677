package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"property-risk/internal/finance"
	"property-risk/internal/model"
	"property-risk/internal/montecarlo"
)

// Demo:
// - Build a representative single-family rental profile
// - Print the deterministic metrics report
// - Run a seeded Monte Carlo and print the risk summary
func main() {
	seed := flag.Int64("seed", 42, "Seed for the simulation (0=clock)")
	n := flag.Int("n", 10000, "Number of trials")
	years := flag.Int("years", 10, "Holding period in years")
	flag.Parse()

	profile, err := model.NewProperty(model.PropertyProfile{
		PurchasePrice: 300000,
		DownPayment:   60000,
		LoanAmount:    240000,
		InterestRate:  6.5,
		LoanTermYears: 30,
		MonthlyRent:   2500,
		Expenses: model.Expenses{
			PropertyTax:        300,
			Insurance:          100,
			Maintenance:        150,
			PropertyManagement: 125,
			HOAFees:            50,
			OtherExpenses:      50,
		},
	})
	if err != nil {
		panic(err)
	}

	calc, err := finance.NewCalculator(profile)
	if err != nil {
		panic(err)
	}

	fmt.Println("=== Deterministic analysis ===")
	printJSON(calc.Comprehensive())

	cfg := montecarlo.DefaultConfig()
	cfg.Simulations = *n
	cfg.Years = *years
	cfg.Seed = *seed

	result, err := montecarlo.New().Run(context.Background(), profile, cfg)
	if err != nil {
		panic(err)
	}
	result.Raw = nil

	fmt.Println("=== Monte Carlo risk summary ===")
	printJSON(result)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}
