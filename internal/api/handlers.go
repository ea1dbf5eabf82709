// internal/api/handlers.go
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/watchpost/watchpost/internal/models"
	"github.com/watchpost/watchpost/internal/registry"
	"github.com/watchpost/watchpost/internal/snapshot"
)

// Handlers serves the dashboard and its JSON API from the injected collector
// state. Handlers only read the snapshot store; the poll engine is its sole
// writer.
type Handlers struct {
	Registry  *registry.Registry
	Store     *snapshot.Store
	StartTime time.Time
	Version   string
}

// NewHandlers wires the API against the given registry and snapshot store.
func NewHandlers(reg *registry.Registry, store *snapshot.Store, version string) *Handlers {
	return &Handlers{
		Registry:  reg,
		Store:     store,
		StartTime: time.Now(),
		Version:   version,
	}
}

// @Summary Dashboard page
// @Description Serves the fleet-health dashboard UI.
// @Tags Dashboard
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *Handlers) DashboardHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// @Summary Current snapshot
// @Description Returns the latest poll-cycle result for every registered endpoint, in registration order.
// @Tags Monitoring
// @Produce json
// @Success 200 {array} models.EndpointResult
// @Router /api/servers [get]
func (h *Handlers) SnapshotHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Current())
}

// @Summary List endpoints
// @Description Returns the registered endpoints in registration order.
// @Tags Endpoints
// @Produce json
// @Success 200 {array} models.Endpoint
// @Router /api/endpoints [get]
func (h *Handlers) ListEndpointsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registry.List())
}

// @Summary Add endpoint
// @Description Registers a new monitored endpoint. Names must be unique; it appears in the snapshot after the next poll cycle.
// @Tags Endpoints
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Unique endpoint name"
// @Param address formData string true "host:port or full usage URL for metrics-source, URL for http-probe"
// @Param kind formData string true "Endpoint kind" Enums(metrics-source, http-probe)
// @Success 200 {object} models.GenericSuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid payload or duplicate name"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /add_endpoint [post]
func (h *Handlers) AddEndpointHandler(c *gin.Context) {
	var req models.AddEndpointRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warnf("AddEndpoint failed: Invalid form payload: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid form payload: " + err.Error()})
		return
	}

	kind, err := models.ParseEndpointKind(req.Kind)
	if err != nil {
		log.Warnf("AddEndpoint failed for '%s': %v", req.Name, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	ep := models.Endpoint{Name: req.Name, Address: req.Address, Kind: kind}
	if err := h.Registry.Add(ep); err != nil {
		if errors.Is(err, registry.ErrNameExists) {
			log.Warnf("AddEndpoint failed: name '%s' already exists", req.Name)
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Endpoint name already exists"})
			return
		}
		log.Errorf("AddEndpoint failed for '%s': %v", req.Name, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	log.Infof("AddEndpoint: registered '%s' (%s) at '%s'", req.Name, kind, req.Address)
	c.JSON(http.StatusOK, models.GenericSuccessResponse{Message: "Endpoint added"})
}

// @Summary Remove endpoint
// @Description Removes a monitored endpoint. Removing an unknown name succeeds without effect.
// @Tags Endpoints
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Endpoint name"
// @Success 200 {object} models.GenericSuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid payload"
// @Router /delete_endpoint [post]
func (h *Handlers) RemoveEndpointHandler(c *gin.Context) {
	var req models.RemoveEndpointRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warnf("RemoveEndpoint failed: Invalid form payload: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid form payload: " + err.Error()})
		return
	}

	h.Registry.Remove(req.Name)

	log.Infof("RemoveEndpoint: removed '%s'", req.Name)
	c.JSON(http.StatusOK, models.GenericSuccessResponse{Message: "Endpoint removed"})
}

// @Summary Health check
// @Description Liveness information about the collector itself.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Uptime:    time.Since(h.StartTime).Round(time.Second).String(),
		StartTime: h.StartTime,
		Version:   h.Version,
	})
}
