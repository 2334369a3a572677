package montecarlo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10000, cfg.Simulations)
	assert.Equal(t, 10, cfg.Years)
	assert.Equal(t, Range{Min: 0.02, Max: 0.05}, cfg.RentGrowthRange)
	assert.Equal(t, Range{Min: 0.05, Max: 0.15}, cfg.VacancyRateRange)
	assert.Equal(t, Range{Min: 0.02, Max: 0.04}, cfg.AppreciationRange)
	assert.Equal(t, 0.1, cfg.ExpenseVolatility)
	assert.Equal(t, 0.1, cfg.MajorRepairProbability)
	assert.Equal(t, Range{Min: 5000, Max: 15000}, cfg.MajorRepairCostRange)
	assert.Equal(t, 0.03, cfg.RiskFreeRate)
	assert.Equal(t, int64(0), cfg.Seed)

	assert.NoError(t, cfg.Validate())
}

func TestFromMap_EmptyUsesDefaults(t *testing.T) {
	cfg, err := FromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestMerge_Overrides(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"simulations":       500,
		"years":             5,
		"rent_growth_range": []any{-0.02, 0.01},
		"seed":              42,
	})
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Simulations)
	assert.Equal(t, 5, cfg.Years)
	assert.Equal(t, Range{Min: -0.02, Max: 0.01}, cfg.RentGrowthRange)
	assert.Equal(t, int64(42), cfg.Seed)
	// Untouched keys keep their defaults.
	assert.Equal(t, Range{Min: 0.05, Max: 0.15}, cfg.VacancyRateRange)
}

func TestMerge_UnknownKeysIgnored(t *testing.T) {
	cfg, err := FromMap(map[string]any{"discount_rate": 0.08})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestMerge_DoesNotMutateBase(t *testing.T) {
	base := DefaultConfig()
	_, err := Merge(base, map[string]any{"simulations": 1})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), base)
}

func TestMerge_Float64Ranges(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"major_repair_cost_range": []float64{1000, 2000},
	})
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 1000, Max: 2000}, cfg.MajorRepairCostRange)
}

func TestMerge_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		params map[string]any
		field  string
	}{
		{"zero simulations", map[string]any{"simulations": 0}, "simulations"},
		{"negative years", map[string]any{"years": -1}, "years"},
		{"inverted range", map[string]any{"vacancy_rate_range": []any{0.2, 0.1}}, "vacancy_rate_range"},
		{"partial range", map[string]any{"rent_growth_range": []any{0.02}}, "rent_growth_range"},
		{"non-numeric range", map[string]any{"appreciation_range": []any{"a", "b"}}, "appreciation_range"},
		{"range not a list", map[string]any{"major_repair_cost_range": 5000}, "major_repair_cost_range"},
		{"negative volatility", map[string]any{"expense_volatility": -0.1}, "expense_volatility"},
		{"probability above one", map[string]any{"major_repair_probability": 1.5}, "major_repair_probability"},
		{"non-numeric scalar", map[string]any{"risk_free_rate": "3%"}, "risk_free_rate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromMap(tc.params)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidate_PointRangesAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RentGrowthRange = Range{Min: 0.03, Max: 0.03}
	assert.NoError(t, cfg.Validate())
}

func TestRange_JSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(Range{Min: 0.02, Max: 0.05})
	require.NoError(t, err)
	assert.JSONEq(t, `[0.02, 0.05]`, string(out))

	var r Range
	require.NoError(t, json.Unmarshal([]byte(`[1, 2]`), &r))
	assert.Equal(t, Range{Min: 1, Max: 2}, r)

	assert.Error(t, json.Unmarshal([]byte(`[1]`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"min":1}`), &r))
}
