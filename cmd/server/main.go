package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staffing-dashboard/internal/api/routes"
	"staffing-dashboard/internal/auth"
	"staffing-dashboard/internal/cache"
	"staffing-dashboard/internal/config"
	"staffing-dashboard/internal/database"
	"staffing-dashboard/internal/logger"
	"staffing-dashboard/internal/repository"
	"staffing-dashboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "staffing-dashboard/docs" // This is needed for swag
)

//	@title			Staffing Gap Dashboard API
//	@version		1.0
//	@description	Password-gated dashboard over the staffing view: filter by depot and date range, aggregate per day, export the table.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8501
//	@BasePath	/

//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						staffing_session

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// The connection is opened on the first request; a failure there is
	// reported to that request and retried on the next.
	connector := database.NewConnector(cfg.DatabaseURL, cfg.SourceIdentity(), nil)
	defer func() {
		if err := connector.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database connection")
		}
	}()

	sessions, err := auth.NewSessionService(auth.NewAuthConfig(cfg))
	if err != nil {
		logrus.Fatal("Failed to initialize sessions: ", err)
	}
	if cfg.SessionSecret == "" {
		logrus.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}

	datasetCache := cache.NewDatasetCache(cfg.DatasetCacheTTL)
	staffingRepo := repository.NewStaffingRepository(connector, cfg.StaffingView)
	staffingService := service.NewStaffingService(staffingRepo, datasetCache, validator.New())

	router := routes.SetupRoutes(cfg, routes.Dependencies{
		DB:       connector,
		Staffing: staffingService,
		Sessions: sessions,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":   cfg.Port,
			"source": connector.Source(),
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	for sig := range signals {
		if sig == syscall.SIGHUP {
			datasetCache.InvalidateAll()
			logrus.Info("Dataset cache invalidated")
			continue
		}
		break
	}

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}
}
