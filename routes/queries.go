package routes

import (
	querycontroller "github.com/backend-makers/storefront-api/controllers/query"
	"github.com/gin-gonic/gin"
)

// SetupQueryRoutes registers the natural-language query gateway plus
// health and info endpoints.
func SetupQueryRoutes(api *gin.RouterGroup, processor *querycontroller.Processor) {
	api.POST("/query", querycontroller.ProcessHumanQuery(processor))
	api.GET("/health", querycontroller.HealthCheck(processor))
	api.GET("/info", querycontroller.SystemInfo())
}
