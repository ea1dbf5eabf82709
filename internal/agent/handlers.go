// internal/agent/handlers.go
package agent

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/watchpost/watchpost/internal/models"
)

// Handlers holds the dependencies for the agent's HTTP endpoints.
type Handlers struct {
	Sampler Sampler
}

// NewHandlers creates handlers backed by the given sampler.
func NewHandlers(sampler Sampler) *Handlers {
	return &Handlers{Sampler: sampler}
}

// UsageHandler serves the current resource usage of the host.
func (h *Handlers) UsageHandler(c *gin.Context) {
	metrics, err := h.Sampler.Collect(c.Request.Context())
	if err != nil {
		log.Errorf("Agent: collection failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to collect system usage"})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// SetupRoutes configures the agent's routes on the router.
func SetupRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/usage", h.UsageHandler)
}
