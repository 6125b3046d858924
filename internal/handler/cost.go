package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nshtkum/perplexchecker/internal/model"
	"github.com/nshtkum/perplexchecker/internal/service"
)

// CostHandler handles cost estimation and model catalog requests
type CostHandler struct{}

// NewCostHandler creates a new cost handler
func NewCostHandler() *CostHandler {
	return &CostHandler{}
}

// Estimate handles POST /api/v1/cost/estimate
func (h *CostHandler) Estimate(c *gin.Context) {
	var req model.CostEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.InputTokens < 0 || req.OutputTokens < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token counts must not be negative"})
		return
	}

	estimate := service.EstimateCost(req.Model, req.InputTokens, req.OutputTokens)

	c.JSON(http.StatusOK, gin.H{
		"estimate":    estimate,
		"display":     estimate.FormattedUSD(),
		"known_model": service.KnownModel(req.Model),
	})
}

// Models handles GET /api/v1/models
func (h *CostHandler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": service.ModelCatalog()})
}
