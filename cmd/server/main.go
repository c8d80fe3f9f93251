// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/api"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/cache"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/config"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/dataset"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/remote"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/service"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/storage"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetLevel("info")
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the report cache (noop unless enabled)
	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("report cache unavailable, continuing without memoization")
		reportCache = cache.NewNoopReportCache()
	}

	// Initialize upload archival storage
	var archive storage.ObjectStorage
	if cfg.Storage.Enabled {
		archive, err = storage.NewMinioClient(cfg.Storage)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("object storage unavailable, archiving uploads locally")
			archive = nil
		}
	}
	if archive == nil {
		archive, err = storage.NewLocalStorage(cfg.App.UploadDir)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("failed to initialize upload storage")
		}
	}

	// Initialize services
	svc := service.NewAnalyticsService(
		dataset.NewStore(),
		remote.NewClient(cfg.Remote),
		reportCache,
		archive,
	)

	// Initialize HTTP server
	router := api.NewRouter(svc, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
