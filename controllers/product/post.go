package productcontroller

import (
	"net/http"

	"github.com/backend-makers/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Brand         string   `json:"brand"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	Stock         int      `json:"stock" binding:"gte=0"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating" binding:"gte=0,lte=5"`
	Reviews       int      `json:"reviews" binding:"gte=0"`
	ImageURL      string   `json:"image_url"`
	OriginalPrice *float64 `json:"original_price"`
	IsNew         bool     `json:"is_new"`
	IsOnSale      bool     `json:"is_on_sale"`
}

// CreateProduct inserts a new product. Admin only.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:          input.Name,
			Brand:         input.Brand,
			Description:   input.Description,
			Price:         input.Price,
			Stock:         input.Stock,
			Category:      input.Category,
			Rating:        input.Rating,
			Reviews:       input.Reviews,
			ImageURL:      input.ImageURL,
			OriginalPrice: input.OriginalPrice,
			IsNew:         input.IsNew,
			IsOnSale:      input.IsOnSale,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
