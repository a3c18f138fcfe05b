package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/backend-makers/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListResponse is the paginated product listing payload.
type ListResponse struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// GetProducts returns a filtered, paginated listing ordered by name.
// Query params: page, limit, category, search, is_on_sale, is_new.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit < 1 || limit > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}

		query := db.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			query = query.Where("category ILIKE ?", "%"+category+"%")
		}
		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("name ILIKE ? OR brand ILIKE ? OR description ILIKE ?", like, like, like)
		}
		if raw := c.Query("is_on_sale"); raw != "" {
			onSale, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_on_sale"})
				return
			}
			query = query.Where("is_on_sale = ?", onSale)
		}
		if raw := c.Query("is_new"); raw != "" {
			isNew, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_new"})
				return
			}
			query = query.Where("is_new = ?", isNew)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		// UUID primary keys are random, so order by name for stable pages.
		var products []models.Product
		offset := (page - 1) * limit
		if err := query.Order("name").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}

		c.JSON(http.StatusOK, ListResponse{
			Products: products,
			Total:    total,
			Page:     page,
			Limit:    limit,
		})
	}
}
