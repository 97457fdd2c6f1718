package main

import (
	"fmt"
	"net/http"
	"os"

	"investdesk/internal/config"
	"investdesk/internal/database"
	"investdesk/internal/handlers"
	"investdesk/internal/logger"
	"investdesk/internal/marketdata"
	"investdesk/internal/middleware"
	"investdesk/internal/services"
	"investdesk/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "investdesk/internal/docs" // Import swagger docs
)

// @title           InvestDesk API
// @version         1.0
// @description     Back-office API for managing investment clients, tradeable assets, allocations, cash-flow transactions, and captation reporting.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Register custom request validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Market-data provider client
	marketClient := marketdata.NewClient(
		&http.Client{Timeout: appConfig.MarketHTTPTimeout},
		appConfig.MarketSearchURL,
		appConfig.MarketQuoteURL,
	)

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	clientService := services.NewClientService(db)
	assetService := services.NewAssetService(db, marketClient)
	allocationService := services.NewAllocationService(db, clientService, assetService)
	transactionService := services.NewTransactionService(db, clientService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	assetHandler := handlers.NewAssetHandler(assetService)
	allocationHandler := handlers.NewAllocationHandler(allocationService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, clientService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

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

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Scheduled-job routes, guarded by the refresh API key
	jobs := v1.Group("/jobs")
	jobs.Use(middleware.RefreshAuthMiddleware(appConfig.RefreshAPIKey))
	jobs.POST("/assets/refresh", assetHandler.RefreshAssets)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Operator profile
	protected.GET("/profile", authHandler.GetProfile)

	// Client routes
	clients := protected.Group("/clients")
	clients.POST("", clientHandler.CreateClient)
	clients.GET("", clientHandler.ListClients)
	clients.GET("/:id", clientHandler.GetClient)
	clients.PUT("/:id", clientHandler.UpdateClient)
	clients.DELETE("/:id", clientHandler.DeactivateClient)
	clients.GET("/:id/allocations", allocationHandler.GetClientAllocations)

	// Asset routes
	assets := protected.Group("/assets")
	assets.POST("", assetHandler.CreateAsset)
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/:id", assetHandler.GetAsset)
	assets.GET("/ticker/:ticker", assetHandler.GetAssetByTicker)
	assets.POST("/:id/enrich", assetHandler.EnrichAsset)

	// Market-data routes
	market := protected.Group("/market")
	market.GET("/search", assetHandler.SearchMarket)
	market.GET("/assets/:ticker", assetHandler.GetMarketDetails)

	// Allocation routes
	allocations := protected.Group("/allocations")
	allocations.POST("", allocationHandler.CreateAllocation)
	allocations.GET("", allocationHandler.ListAllocations)
	allocations.GET("/summary/value", allocationHandler.GetTotalValue)
	allocations.GET("/:id", allocationHandler.GetAllocation)
	allocations.PUT("/:id", allocationHandler.UpdateAllocation)
	allocations.DELETE("/:id", allocationHandler.DeleteAllocation)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/reports/captation", transactionHandler.GetCaptationReport)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	log.Infof("Starting InvestDesk backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
