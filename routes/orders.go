package routes

import (
	"github.com/backend-makers/storefront-api/config"
	ordercontroller "github.com/backend-makers/storefront-api/controllers/order"
	"github.com/backend-makers/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers order placement and queries for users and
// the admin order feed.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Settings) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		orders.POST("/user/:userID", ordercontroller.CreateOrderHandler(db))
		orders.POST("/validate", ordercontroller.ValidateOrderHandler(db))
		orders.GET("/user/:userID", ordercontroller.GetUserOrdersHandler(db))
		orders.GET("/:orderID", ordercontroller.GetOrderByIDHandler(db))
	}

	admin := api.Group("/orders")
	admin.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin())
	{
		admin.GET("", ordercontroller.GetAllOrdersHandler(db))
		admin.PUT("/:orderID/status", ordercontroller.UpdateOrderStatusHandler(db))
	}

	// websocket endpoint for real-time order updates
	api.GET("/orders/ws", ordercontroller.OrderWebSocketHandler)
}
