package routes

import (
	"net/http"

	"staffing-dashboard/internal/api/handlers"
	"staffing-dashboard/internal/api/middleware"
	"staffing-dashboard/internal/auth"
	"staffing-dashboard/internal/config"
	"staffing-dashboard/internal/service"
	"staffing-dashboard/internal/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

// Dependencies are the collaborators the router wires into handlers
type Dependencies struct {
	DB       handlers.Pinger
	Staffing service.StaffingServiceInterface
	Sessions *auth.SessionService
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	router.ContextWithFallback = true

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	router.SetHTMLTemplate(web.MustTemplates())
	router.StaticFS("/static", http.FS(web.Static()))

	authConfig := auth.NewAuthConfig(cfg)
	authHandler := auth.NewAuthHandler(authConfig, deps.Sessions)
	authMiddleware := auth.NewAuthMiddleware(deps.Sessions)

	healthHandler := handlers.NewHealthHandler(deps.DB, Version)
	staffingHandler := handlers.NewStaffingHandler(deps.Staffing)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Access gate
	router.GET(auth.LoginPath, authHandler.LoginPage)
	router.POST(auth.LoginPath, authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	// Dashboard page
	router.GET("/", authMiddleware.RequireSession(), staffingHandler.Dashboard)

	// API v1 routes - all endpoints require a session
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireSession())
	{
		report := v1.Group("/report")
		{
			report.GET("", staffingHandler.GetReport)
			report.GET("/export.xlsx", staffingHandler.ExportReport)
		}
	}

	return router
}
