package routes

import (
	"github.com/backend-makers/storefront-api/config"
	usercontroller "github.com/backend-makers/storefront-api/controllers/user"
	"github.com/backend-makers/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers auth endpoints (public) and account
// management (token-protected; listing and deletion admin only).
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Settings) {
	users := api.Group("/users")
	{
		users.POST("/register", usercontroller.Register(db, cfg.JWTSecret))
		users.POST("/login", usercontroller.Login(db, cfg.JWTSecret))
	}

	protected := api.Group("/users")
	protected.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		protected.GET("/:id", usercontroller.GetUserByID(db))
		protected.GET("/email/:email", usercontroller.GetUserByEmail(db))
		protected.PUT("/:id", usercontroller.UpdateUser(db))
	}

	admin := api.Group("/users")
	admin.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin())
	{
		admin.GET("", usercontroller.GetUsers(db))
		admin.DELETE("/:id", usercontroller.DeleteUser(db))
	}
}
