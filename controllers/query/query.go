package querycontroller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/backend-makers/storefront-api/llm"
	"github.com/gin-gonic/gin"
)

type HumanQueryRequest struct {
	HumanQuery string `json:"human_query" binding:"required"`
}

// ProcessHumanQuery handles POST /query. Empty or whitespace-only
// input is rejected before anything downstream is called.
func ProcessHumanQuery(p *Processor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HumanQueryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query cannot be empty"})
			return
		}
		if strings.TrimSpace(req.HumanQuery) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query cannot be empty"})
			return
		}

		resp, err := p.Process(c.Request.Context(), req.HumanQuery)
		if err != nil {
			if errors.Is(err, ErrUnsafeQuery) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   err.Error(),
					"details": "Only SELECT queries are allowed",
				})
				return
			}
			if errors.Is(err, llm.ErrNotConfigured) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "Service not configured correctly",
					"details": err.Error(),
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing query: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// HealthCheck handles GET /health; 503 unless everything is healthy.
func HealthCheck(p *Processor) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := p.Health(c.Request.Context())

		code := http.StatusOK
		if status.Status != "healthy" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status.Status,
			"message":   status.Message,
			"services":  status.Services,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// SystemInfo handles GET /info.
func SystemInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":           "Storefront API",
			"version":           "1.0.0",
			"llm_provider":      "Google Gemini",
			"database_provider": "Supabase Postgres",
			"timestamp":         time.Now().Format(time.RFC3339),
		})
	}
}
