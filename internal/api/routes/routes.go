package routes

import (
	"time"

	"application-catalog-bff/internal/api/handlers"
	"application-catalog-bff/internal/api/middleware"
	"application-catalog-bff/internal/config"
	"application-catalog-bff/internal/repository"
	"application-catalog-bff/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := service.NewValidator()

	// Initialize repositories
	toolRepo := repository.NewToolRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	accessRepo := repository.NewToolAccessRepository(db)

	// Initialize services
	fetchTimeout := time.Duration(cfg.LogoFetchTimeoutSec) * time.Second
	toolService := service.NewToolService(toolRepo, validate, fetchTimeout)
	teamService := service.NewTeamService(teamRepo, validate)
	analyticsService := service.NewAnalyticsService(accessRepo, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	toolHandler := handlers.NewToolHandler(toolService)
	teamHandler := handlers.NewTeamHandler(teamService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Tool routes
	tools := router.Group("/tools")
	{
		tools.GET("", toolHandler.ListTools)
		tools.POST("", toolHandler.CreateTool)
		tools.POST("/bulk", toolHandler.BulkCreateTools)
		tools.GET("/:id", toolHandler.GetTool)
		tools.PUT("/:id", toolHandler.UpdateTool)
		tools.PUT("/by-title/:title", toolHandler.UpdateToolByTitle)
		tools.DELETE("/:id", toolHandler.DeleteTool)
		tools.POST("/:id/logo/upload", toolHandler.UploadLogo)
		tools.POST("/:id/logo/import", toolHandler.ImportLogo)
	}

	// Logo retrieval keeps its own top-level path so the UI can embed it
	// directly in <img> tags
	router.GET("/logos/:id", toolHandler.GetLogo)

	// Team routes
	teams := router.Group("/teams")
	{
		teams.GET("", teamHandler.ListTeams)
		teams.POST("", teamHandler.CreateTeam)
		teams.GET("/:id", teamHandler.GetTeam)
		teams.PUT("/:id", teamHandler.UpdateTeam)
		teams.DELETE("/:id", teamHandler.DeleteTeam)
	}

	// Analytics routes
	router.POST("/tool_access", analyticsHandler.RecordAccess)
	router.GET("/analytics", analyticsHandler.GetSummary)

	return router
}
