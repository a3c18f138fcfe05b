package routes

import (
	"github.com/backend-makers/storefront-api/config"
	productcontroller "github.com/backend-makers/storefront-api/controllers/product"
	"github.com/backend-makers/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupProductRoutes registers catalog reads (public), admin catalog
// writes and the service-key stock endpoint.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Settings) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/featured", productcontroller.GetFeaturedProducts(db))
		products.GET("/categories", productcontroller.GetCategories(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	admin := api.Group("/products")
	admin.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin())
	{
		admin.POST("", productcontroller.CreateProduct(db))
		admin.PUT("/:id", productcontroller.UpdateProduct(db))
		admin.DELETE("/:id", productcontroller.DeleteProduct(db))
		admin.GET("/export/excel", productcontroller.ExportProductsToExcel(db))
	}

	internal := api.Group("/products")
	internal.Use(middleware.ValidateServiceKey(cfg.ServiceAPIKey))
	{
		internal.POST("/:id/update-stock", productcontroller.UpdateStock(db))
	}
}
