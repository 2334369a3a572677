package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"property-risk/internal/config"
	"property-risk/internal/finance"
	"property-risk/internal/model"
	"property-risk/internal/montecarlo"
	"property-risk/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sensitivity":
		cmdSensitivity(os.Args[2:])
	case "scenarios":
		cmdScenarios(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --property property.json")
	fmt.Println("  cli simulate --property property.json [--config config.yaml] [--seed 42] [-n 10000] [--out results/trials.csv]")
	fmt.Println("  cli sensitivity --property property.json --field interest_rate [--range 0.2]")
	fmt.Println("  cli scenarios --property property.json --file scenarios.json [--config config.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - analyze prints deterministic metrics (cash flow, cap rate, DSCR, ...)")
	fmt.Println("  - simulate runs a Monte Carlo over the holding period and prints the risk summary")
	fmt.Println("  - a property JSON file may carry a top-level \"simulation\" block of overrides")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	propPath := fs.String("property", "property.json", "Path to property JSON")
	_ = fs.Parse(args)

	profile, _, err := model.LoadDocument(*propPath)
	if err != nil {
		fatal(err)
	}
	calc, err := finance.NewCalculator(profile)
	if err != nil {
		fatal(err)
	}

	printJSON(calc.Comprehensive())
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	propPath := fs.String("property", "property.json", "Path to property JSON")
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional: write per-trial rows to this CSV path")
	seed := fs.Int64("seed", 0, "Optional: fixed seed for reproducible runs (0=clock)")
	n := fs.Int("n", 0, "Optional: override number of trials (0=config default)")
	_ = fs.Parse(args)

	profile, overrides, err := model.LoadDocument(*propPath)
	if err != nil {
		fatal(err)
	}

	cfg, err := loadSimConfig(*cfgPath, overrides)
	if err != nil {
		fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *n > 0 {
		cfg.Simulations = *n
	}

	engine := montecarlo.New()
	result, err := engine.Run(context.Background(), profile, cfg)
	if err != nil {
		fatal(err)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		trials := result.Raw.Trials()
		if err := montecarlo.WriteTrialsCSV(*outPath, trials); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(trials), *outPath)
	}

	// Keep the printed report compact; raw vectors go to CSV if asked.
	result.Raw = nil
	printJSON(result)
}

func cmdSensitivity(args []string) {
	fs := flag.NewFlagSet("sensitivity", flag.ExitOnError)
	propPath := fs.String("property", "property.json", "Path to property JSON")
	field := fs.String("field", "interest_rate", "Input field to vary")
	rangeFrac := fs.Float64("range", 0.2, "Fractional swing around the base value")
	_ = fs.Parse(args)

	profile, _, err := model.LoadDocument(*propPath)
	if err != nil {
		fatal(err)
	}
	calc, err := finance.NewCalculator(profile)
	if err != nil {
		fatal(err)
	}

	points, err := calc.Sensitivity(*field, *rangeFrac)
	if err != nil {
		fatal(err)
	}
	printJSON(points)
}

func cmdScenarios(args []string) {
	fs := flag.NewFlagSet("scenarios", flag.ExitOnError)
	propPath := fs.String("property", "property.json", "Path to property JSON")
	scenPath := fs.String("file", "scenarios.json", "Path to scenarios JSON (name -> parameter overrides)")
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	profile, overrides, err := model.LoadDocument(*propPath)
	if err != nil {
		fatal(err)
	}
	cfg, err := loadSimConfig(*cfgPath, overrides)
	if err != nil {
		fatal(err)
	}

	raw, err := os.ReadFile(*scenPath)
	if err != nil {
		fatal(err)
	}
	var byName map[string]map[string]any
	if err := json.Unmarshal(raw, &byName); err != nil {
		fatal(fmt.Errorf("parse %s: %w", *scenPath, err))
	}
	scenarios := make([]scenario.Scenario, 0, len(byName))
	for name, ov := range byName {
		scenarios = append(scenarios, scenario.Scenario{Name: name, Overrides: ov})
	}

	outcomes, err := scenario.Run(context.Background(), montecarlo.New(), profile, cfg, scenarios)
	if err != nil {
		fatal(err)
	}
	printJSON(outcomes)
}

// loadSimConfig layers the simulation parameters: built-in defaults, then the
// YAML service config, then the property document's own "simulation" block.
func loadSimConfig(cfgPath string, overrides map[string]any) (montecarlo.Config, error) {
	base := montecarlo.DefaultConfig()
	if cfgPath != "" {
		svc, err := config.Load(cfgPath)
		if err != nil {
			return montecarlo.Config{}, err
		}
		base, err = svc.SimulationDefaults()
		if err != nil {
			return montecarlo.Config{}, err
		}
	}
	if len(overrides) == 0 {
		return base, nil
	}
	return montecarlo.Merge(base, overrides)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
