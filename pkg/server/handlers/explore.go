package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/ramify"
	"github.com/soundprediction/ramify/pkg/server/dto"
	"github.com/soundprediction/ramify/pkg/types"
)

// ExploreHandler handles exploration requests.
type ExploreHandler struct {
	explorer ramify.Explorer
	defaults types.SearchStrategy
}

// NewExploreHandler creates a new explore handler with the given strategy
// defaults.
func NewExploreHandler(explorer ramify.Explorer, defaults types.SearchStrategy) *ExploreHandler {
	return &ExploreHandler{
		explorer: explorer,
		defaults: defaults,
	}
}

// Explore handles POST /api/v1/explore.
func (h *ExploreHandler) Explore(c *gin.Context) {
	var req dto.ExploreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	result, err := h.explorer.Explore(c.Request.Context(), req.Entities(), req.Strategy(h.defaults))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrEmptySeed) || errors.Is(err, types.ErrInvalidStrategy) {
			status = http.StatusBadRequest
		}
		c.JSON(status, dto.ErrorResponse{
			Error:   "exploration_failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromResult(result))
}
