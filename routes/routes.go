package routes

import (
	"github.com/backend-makers/storefront-api/config"
	querycontroller "github.com/backend-makers/storefront-api/controllers/query"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route
// group under /api/v1.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Settings, processor *querycontroller.Processor) {
	api := r.Group("/api/v1")

	SetupProductRoutes(api, db, cfg)
	SetupUserRoutes(api, db, cfg)
	SetupOrderRoutes(api, db, cfg)
	SetupQueryRoutes(api, processor)
}
