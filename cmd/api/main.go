package main

import (
	"fmt"
	"net/http"
	"os"

	"finadvisor/internal/config"
	"finadvisor/internal/database"
	"finadvisor/internal/handlers"
	"finadvisor/internal/logger"
	"finadvisor/internal/middleware"
	"finadvisor/internal/services"
	"finadvisor/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finadvisor/internal/docs" // Import swagger docs
)

// @title           FinAdvisor API
// @version         1.0
// @description     FinAdvisor is a personal finance tracker that analyzes spending patterns, flags wasteful expenses, tracks savings goals, and answers questions through an AI advisor.
// @termsOfService  http://swagger.io/terms/

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

	// Register custom validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.FromApp(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	summaryService := services.NewSummaryService(db)
	transactionService := services.NewTransactionService(db, summaryService)
	goalService := services.NewGoalService(db)
	importService := services.NewImportService(db, summaryService)
	analyticsService := services.NewAnalyticsService(transactionService, goalService, summaryService)
	advisorService := services.NewAdvisorService(transactionService, goalService, appConfig.GeminiAPIKey, appConfig.AdvisorModel)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler, err := handlers.NewAuthHandler(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create auth handler: %w", err)
	}
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	goalHandler := handlers.NewGoalHandler(goalService, auditService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	importHandler := handlers.NewImportHandler(importService, auditService)
	advisorHandler := handlers.NewAdvisorHandler(advisorService)

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
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Dashboard
	protected.GET("/dashboard", analyticsHandler.GetDashboard)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Goal routes
	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoalByID)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Analytics routes
	analytics := protected.Group("/analytics")
	analytics.GET("/report", analyticsHandler.GetReport)
	analytics.POST("/csv", analyticsHandler.AnalyzeCSV)
	analytics.GET("/months", analyticsHandler.GetMonths)

	// Import routes
	imports := protected.Group("/imports")
	imports.POST("/csv", importHandler.ImportCSV)

	// Advisor routes
	advisor := protected.Group("/advisor")
	advisor.POST("/chat", advisorHandler.Chat)

	log.Infof("Starting FinAdvisor backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
