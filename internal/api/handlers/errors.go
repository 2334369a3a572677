package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"property-risk/internal/api/models"
	"property-risk/internal/finance"
	"property-risk/internal/model"
	"property-risk/internal/montecarlo"
)

// writeCoreError translates core error types into caller-facing responses,
// preserving the originating field/reason.
func writeCoreError(c *gin.Context, err error) {
	var missing *model.MissingFieldError
	if errors.As(err, &missing) {
		writeError(c, http.StatusBadRequest, "INVALID_PROPERTY", err.Error(), gin.H{"field": missing.Field})
		return
	}
	var invalid *montecarlo.ValidationError
	if errors.As(err, &invalid) {
		writeError(c, http.StatusBadRequest, "INVALID_CONFIG", err.Error(), gin.H{"field": invalid.Field})
		return
	}
	var unknown *finance.UnknownFieldError
	if errors.As(err, &unknown) {
		writeError(c, http.StatusBadRequest, "UNKNOWN_FIELD", err.Error(), gin.H{"field": unknown.Field})
		return
	}
	writeError(c, http.StatusInternalServerError, "SIMULATION_ERROR", err.Error(), nil)
}

func writeError(c *gin.Context, status int, code, message string, details gin.H) {
	var d map[string]any
	if details != nil {
		d = details
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: d,
		},
	})
}

func writeBadRequest(c *gin.Context, err error) {
	writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
}
