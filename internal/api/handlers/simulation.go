package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-risk/internal/api/models"
	"property-risk/internal/model"
	"property-risk/internal/montecarlo"
	"property-risk/internal/scenario"
	"property-risk/internal/store"
)

// SimulationHandler serves Monte Carlo simulation endpoints.
type SimulationHandler struct {
	engine *montecarlo.Engine
	base   montecarlo.Config
	runs   *store.RunStore
}

// NewSimulationHandler creates a simulation handler. base carries the
// service-level simulation defaults; request configs merge over it.
func NewSimulationHandler(engine *montecarlo.Engine, base montecarlo.Config, runs *store.RunStore) *SimulationHandler {
	return &SimulationHandler{engine: engine, base: base, runs: runs}
}

// Simulate handles POST /api/v1/simulate
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	profile, err := model.FromMap(req.Property)
	if err != nil {
		writeCoreError(c, err)
		return
	}
	cfg, err := montecarlo.Merge(h.base, req.Config)
	if err != nil {
		writeCoreError(c, err)
		return
	}
	if req.Options.Seed != 0 {
		cfg.Seed = req.Options.Seed
	}

	result, err := h.engine.Run(c.Request.Context(), profile, cfg)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	id := h.runs.Put(result)

	resp := models.SimulateResponse{
		ID:     id,
		Status: "completed",
	}
	if req.Options.IncludeTrials {
		resp.Trials = result.Raw.Trials()
	}
	// The raw vectors stay retrievable via the trials endpoint; keep the
	// main response compact.
	stripped := *result
	stripped.Raw = nil
	resp.Result = &stripped

	c.JSON(http.StatusOK, resp)
}

// Trials handles GET /api/v1/simulations/:id/trials
func (h *SimulationHandler) Trials(c *gin.Context) {
	id := c.Param("id")
	result, ok := h.runs.Get(id)
	if !ok {
		writeError(c, http.StatusNotFound, "RUN_NOT_FOUND",
			"simulation run not found or expired; re-run with include_trials=true to get trials inline", nil)
		return
	}
	c.JSON(http.StatusOK, models.TrialsResponse{
		ID:     id,
		Trials: result.Raw.Trials(),
	})
}

// Scenarios handles POST /api/v1/simulate/scenarios
func (h *SimulationHandler) Scenarios(c *gin.Context) {
	var req models.ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	profile, err := model.FromMap(req.Property)
	if err != nil {
		writeCoreError(c, err)
		return
	}
	base, err := montecarlo.Merge(h.base, req.Config)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	scenarios := make([]scenario.Scenario, 0, len(req.Scenarios))
	for name, overrides := range req.Scenarios {
		scenarios = append(scenarios, scenario.Scenario{Name: name, Overrides: overrides})
	}

	outcomes, err := scenario.Run(c.Request.Context(), h.engine, profile, base, scenarios)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ScenarioResponse{
		Status:    "completed",
		Scenarios: outcomes,
	})
}
