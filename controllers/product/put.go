package productcontroller

import (
	"errors"
	"net/http"

	"github.com/backend-makers/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProductInput carries partial updates; nil fields are left
// untouched.
type UpdateProductInput struct {
	Name          *string  `json:"name"`
	Brand         *string  `json:"brand"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	Stock         *int     `json:"stock"`
	Category      *string  `json:"category"`
	Rating        *float64 `json:"rating"`
	Reviews       *int     `json:"reviews"`
	ImageURL      *string  `json:"image_url"`
	OriginalPrice *float64 `json:"original_price"`
	IsNew         *bool    `json:"is_new"`
	IsOnSale      *bool    `json:"is_on_sale"`
}

// UpdateProduct applies a partial update to a product. Admin only.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Brand != nil {
			updates["brand"] = *input.Brand
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
				return
			}
			updates["price"] = *input.Price
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
				return
			}
			updates["stock"] = *input.Stock
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Rating != nil {
			updates["rating"] = *input.Rating
		}
		if input.Reviews != nil {
			updates["reviews"] = *input.Reviews
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.OriginalPrice != nil {
			updates["original_price"] = *input.OriginalPrice
		}
		if input.IsNew != nil {
			updates["is_new"] = *input.IsNew
		}
		if input.IsOnSale != nil {
			updates["is_on_sale"] = *input.IsOnSale
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct removes a product. Admin only.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
