package montecarlo

import (
	"encoding/json"
	"fmt"
)

// Range is a [min,max] pair of annual rates or dollar amounts.
// It marshals as a two-element JSON array to match the caller contract.
type Range struct {
	Min float64
	Max float64
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{r.Min, r.Max})
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("range must be a pair [min, max], got %d values", len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

func (r Range) point() bool { return r.Min == r.Max }

// Config holds the simulation parameters for one run. Treat a Config as
// immutable once built: scenario analysis derives new configs instead of
// modifying a shared one.
type Config struct {
	Simulations int `json:"simulations"`
	Years       int `json:"years"`

	RentGrowthRange   Range `json:"rent_growth_range"`
	VacancyRateRange  Range `json:"vacancy_rate_range"`
	AppreciationRange Range `json:"appreciation_range"`

	// ExpenseVolatility is the standard deviation of the multiplicative
	// normal(1, sd) expense draw. The draw is not clamped at zero, so a
	// very volatile config can produce a negative multiplier in deep
	// tails; see DESIGN.md.
	ExpenseVolatility float64 `json:"expense_volatility"`

	MajorRepairProbability float64 `json:"major_repair_probability"`
	MajorRepairCostRange   Range   `json:"major_repair_cost_range"`

	// RiskFreeRate is annualized and applied directly against multi-year
	// total return when computing the Sharpe ratio (documented
	// simplification).
	RiskFreeRate float64 `json:"risk_free_rate"`

	// Seed selects the random stream; 0 means seed from the clock.
	// A fixed non-zero seed reproduces the run exactly, independent of
	// worker count.
	Seed int64 `json:"seed,omitempty"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Simulations:            10000,
		Years:                  10,
		RentGrowthRange:        Range{Min: 0.02, Max: 0.05}, // 2-5% annual rent growth
		VacancyRateRange:       Range{Min: 0.05, Max: 0.15}, // 5-15% vacancy
		AppreciationRange:      Range{Min: 0.02, Max: 0.04}, // 2-4% annual appreciation
		ExpenseVolatility:      0.1,
		MajorRepairProbability: 0.1,
		MajorRepairCostRange:   Range{Min: 5000, Max: 15000},
		RiskFreeRate:           0.03,
	}
}

// ValidationError reports a malformed simulation config. It is raised at
// configuration time, before any trial runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid simulation config: %s: %s", e.Field, e.Reason)
}

func (c Config) Validate() error {
	if c.Simulations <= 0 {
		return &ValidationError{Field: "simulations", Reason: "must be a positive integer"}
	}
	if c.Years <= 0 {
		return &ValidationError{Field: "years", Reason: "must be a positive integer"}
	}
	ranges := []struct {
		field string
		r     Range
	}{
		{"rent_growth_range", c.RentGrowthRange},
		{"vacancy_rate_range", c.VacancyRateRange},
		{"appreciation_range", c.AppreciationRange},
		{"major_repair_cost_range", c.MajorRepairCostRange},
	}
	for _, rr := range ranges {
		if rr.r.Min > rr.r.Max {
			return &ValidationError{Field: rr.field, Reason: "min must be <= max"}
		}
	}
	if c.ExpenseVolatility < 0 {
		return &ValidationError{Field: "expense_volatility", Reason: "must be >= 0"}
	}
	if c.MajorRepairProbability < 0 || c.MajorRepairProbability > 1 {
		return &ValidationError{Field: "major_repair_probability", Reason: "must be in [0,1]"}
	}
	return nil
}

// FromMap merges caller-supplied parameters over the defaults and
// validates the result. Unknown keys are accepted and ignored.
func FromMap(params map[string]any) (Config, error) {
	return Merge(DefaultConfig(), params)
}

// Merge overlays parameters onto a base config. The merge is shallow:
// a range pair replaces the base pair wholesale, and a partial pair is a
// validation error, never deep-merged.
func Merge(base Config, params map[string]any) (Config, error) {
	cfg := base

	if v, ok := params["simulations"]; ok {
		n, err := toInt(v)
		if err != nil {
			return Config{}, &ValidationError{Field: "simulations", Reason: err.Error()}
		}
		cfg.Simulations = n
	}
	if v, ok := params["years"]; ok {
		n, err := toInt(v)
		if err != nil {
			return Config{}, &ValidationError{Field: "years", Reason: err.Error()}
		}
		cfg.Years = n
	}

	rangeFields := []struct {
		key string
		dst *Range
	}{
		{"rent_growth_range", &cfg.RentGrowthRange},
		{"vacancy_rate_range", &cfg.VacancyRateRange},
		{"appreciation_range", &cfg.AppreciationRange},
		{"major_repair_cost_range", &cfg.MajorRepairCostRange},
	}
	for _, rf := range rangeFields {
		v, ok := params[rf.key]
		if !ok {
			continue
		}
		r, err := toRange(v)
		if err != nil {
			return Config{}, &ValidationError{Field: rf.key, Reason: err.Error()}
		}
		*rf.dst = r
	}

	scalarFields := []struct {
		key string
		dst *float64
	}{
		{"expense_volatility", &cfg.ExpenseVolatility},
		{"major_repair_probability", &cfg.MajorRepairProbability},
		{"risk_free_rate", &cfg.RiskFreeRate},
	}
	for _, sf := range scalarFields {
		v, ok := params[sf.key]
		if !ok {
			continue
		}
		f, err := toNum(v)
		if err != nil {
			return Config{}, &ValidationError{Field: sf.key, Reason: err.Error()}
		}
		*sf.dst = f
	}

	if v, ok := params["seed"]; ok {
		n, err := toInt(v)
		if err != nil {
			return Config{}, &ValidationError{Field: "seed", Reason: err.Error()}
		}
		cfg.Seed = int64(n)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func toNum(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toInt(v any) (int, error) {
	f, err := toNum(v)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func toRange(v any) (Range, error) {
	switch pair := v.(type) {
	case []any:
		if len(pair) != 2 {
			return Range{}, fmt.Errorf("must be a pair [min, max], got %d values", len(pair))
		}
		lo, err := toNum(pair[0])
		if err != nil {
			return Range{}, err
		}
		hi, err := toNum(pair[1])
		if err != nil {
			return Range{}, err
		}
		return Range{Min: lo, Max: hi}, nil
	case []float64:
		if len(pair) != 2 {
			return Range{}, fmt.Errorf("must be a pair [min, max], got %d values", len(pair))
		}
		return Range{Min: pair[0], Max: pair[1]}, nil
	default:
		return Range{}, fmt.Errorf("expected a pair [min, max], got %T", v)
	}
}
