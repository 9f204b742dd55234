package middleware

import (
	"time"

	"staffing-dashboard/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured origins to call the report API with the session cookie
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", RequestIDHeader,
		},
		AllowCredentials: true,
		ExposeHeaders: []string{
			"Content-Type", "Content-Disposition", RequestIDHeader,
		},
		MaxAge: 12 * time.Hour,
	}

	return cors.New(corsConfig)
}
