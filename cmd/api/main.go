package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tradebook/internal/config"
	"tradebook/internal/handlers"
	"tradebook/internal/logger"
	"tradebook/internal/middleware"
	"tradebook/internal/seed"
	"tradebook/internal/services"
	"tradebook/internal/store"
	"tradebook/internal/validator"

	_ "tradebook/internal/docs" // Import swagger docs
)

// @title           Tradebook API
// @version         1.0
// @description     Tradebook is a mock trade-query service exposing an in-memory set of synthetic trades through a read-only API with search, filtering, sorting and pagination.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Build and seed the trade store. The store is written once here and
	// only read for the rest of the process lifetime.
	tradeStore := store.New()
	if err := seed.Populate(tradeStore, appConfig.SeedTrades, uint64(appConfig.SeedRandom)); err != nil {
		return fmt.Errorf("failed to seed trade store: %w", err)
	}
	log.Infof("Seeded %d trades", tradeStore.Len())

	// Initialize services
	tradeService := services.NewTradeService(tradeStore)

	// Initialize handlers
	tradeHandler := handlers.NewTradeHandler(tradeService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Trade routes
	trades := v1.Group("/trades")
	trades.GET("", tradeHandler.ListTrades)
	trades.GET("/:id", tradeHandler.GetTrade)

	log.Infof("Starting Tradebook server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
