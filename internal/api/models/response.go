package models

import (
	"property-risk/internal/finance"
	"property-risk/internal/montecarlo"
	"property-risk/internal/scenario"
)

// AnalyzeResponse wraps the deterministic metrics report.
type AnalyzeResponse struct {
	Status   string           `json:"status"`
	Analysis finance.Analysis `json:"analysis"`
}

// SimulateResponse returns a completed simulation. Trials are included
// only when requested; the full run stays retrievable by ID for a while.
type SimulateResponse struct {
	ID     string                    `json:"id"`
	Status string                    `json:"status"`
	Result *montecarlo.Result        `json:"result"`
	Trials []montecarlo.TrialOutcome `json:"trials,omitempty"`
}

// TrialsResponse lists the per-trial outcomes of a stored run.
type TrialsResponse struct {
	ID     string                    `json:"id"`
	Trials []montecarlo.TrialOutcome `json:"trials"`
}

// ScenarioResponse ranks scenario outcomes by expected return.
type ScenarioResponse struct {
	Status    string             `json:"status"`
	Scenarios []scenario.Outcome `json:"scenarios"`
}

// SensitivityResponse holds the three evaluated multiplier points.
type SensitivityResponse struct {
	Status string                     `json:"status"`
	Field  string                     `json:"field"`
	Range  float64                    `json:"range"`
	Points []finance.SensitivityPoint `json:"points"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
