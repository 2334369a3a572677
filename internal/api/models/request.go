package models

// AnalyzeRequest asks for the deterministic metrics report.
// Property is a plain field mapping, the record shape owned by the
// caller's storage layer; required fields are validated by the core.
type AnalyzeRequest struct {
	Property map[string]any `json:"property" binding:"required"`
}

// SimulateRequest runs a Monte Carlo simulation.
// Config keys override the simulator defaults; unknown keys are ignored.
type SimulateRequest struct {
	Property map[string]any  `json:"property" binding:"required"`
	Config   map[string]any  `json:"config,omitempty"`
	Options  SimulateOptions `json:"options,omitempty"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	IncludeTrials bool  `json:"include_trials,omitempty"` // default: false
	Seed          int64 `json:"seed,omitempty"`           // 0 = clock-seeded
}

// ScenarioRequest compares named override sets against a base config.
type ScenarioRequest struct {
	Property  map[string]any            `json:"property" binding:"required"`
	Config    map[string]any            `json:"config,omitempty"`
	Scenarios map[string]map[string]any `json:"scenarios" binding:"required"`
}

// SensitivityRequest recomputes key metrics with one field scaled
// +/- Range (default 0.2 = +/-20%).
type SensitivityRequest struct {
	Property map[string]any `json:"property" binding:"required"`
	Field    string         `json:"field" binding:"required"`
	Range    float64        `json:"range,omitempty"`
}
