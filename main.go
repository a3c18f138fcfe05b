package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/backend-makers/storefront-api/config"
	querycontroller "github.com/backend-makers/storefront-api/controllers/query"
	"github.com/backend-makers/storefront-api/llm"
	"github.com/backend-makers/storefront-api/middleware"
	"github.com/backend-makers/storefront-api/models"
	"github.com/backend-makers/storefront-api/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	log := newLogger(cfg)
	log.WithFields(logrus.Fields{
		"debug":             cfg.Debug,
		"gemini_configured": cfg.GeminiConfigured(),
	}).Info("starting storefront API")

	db := initDatabase(cfg, log)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("automigrate failed: %v", err)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Welcome endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Storefront API working correctly",
			"service": "Storefront API",
			"version": "1.0.0",
			"health":  "/api/v1/health",
		})
	})

	llmClient := llm.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, log)
	processor := querycontroller.NewProcessor(db, llmClient, log)

	routes.SetupRoutes(r, db, cfg, processor)

	addr := cfg.Host + ":" + cfg.Port
	log.Infof("server running on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newLogger(cfg *config.Settings) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	return log
}

// initDatabase sets up the GORM connection to the managed Postgres.
func initDatabase(cfg *config.Settings, log *logrus.Logger) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}
