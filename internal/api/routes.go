// internal/api/routes.go
package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/watchpost/watchpost/docs"
)

// SetupRoutes wires the dashboard page, the JSON API and the swagger UI.
func SetupRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/", h.DashboardHandler)
	router.GET("/health", h.HealthHandler)

	// Swagger documentation route
	// Access it at /swagger/index.html
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	api := router.Group("/api")
	{
		// GET /api/servers
		api.GET("/servers", h.SnapshotHandler)
		// GET /api/endpoints
		api.GET("/endpoints", h.ListEndpointsHandler)
	}

	// Form endpoints used by the dashboard's add/remove controls
	router.POST("/add_endpoint", h.AddEndpointHandler)
	router.POST("/delete_endpoint", h.RemoveEndpointHandler)
}
