package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-risk/internal/api/models"
	"property-risk/internal/finance"
	"property-risk/internal/model"
)

// AnalysisHandler serves the deterministic metrics endpoints.
type AnalysisHandler struct{}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	profile, err := model.FromMap(req.Property)
	if err != nil {
		writeCoreError(c, err)
		return
	}
	calc, err := finance.NewCalculator(profile)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Status:   "completed",
		Analysis: calc.Comprehensive(),
	})
}

// Sensitivity handles POST /api/v1/sensitivity
func (h *AnalysisHandler) Sensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}
	if req.Range == 0 {
		req.Range = 0.2
	}

	profile, err := model.FromMap(req.Property)
	if err != nil {
		writeCoreError(c, err)
		return
	}
	calc, err := finance.NewCalculator(profile)
	if err != nil {
		writeCoreError(c, err)
		return
	}
	points, err := calc.Sensitivity(req.Field, req.Range)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SensitivityResponse{
		Status: "completed",
		Field:  req.Field,
		Range:  req.Range,
		Points: points,
	})
}
