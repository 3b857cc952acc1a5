package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spoolsim/spoolsim/internal/config"
	handler "github.com/spoolsim/spoolsim/internal/delivery/http"
	"github.com/spoolsim/spoolsim/internal/repository/memory"
	"github.com/spoolsim/spoolsim/internal/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Starting spoolsim server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// The queue lives for the process lifetime; constructed once here and
	// passed by reference to everything that needs it.
	jobRepo := memory.NewJobRepository(cfg.Spool.Capacity)
	logger.Info("Print queue initialized", zap.Int("capacity", cfg.Spool.Capacity))

	// Initialize use cases
	submitUC := usecase.NewSubmitJobUsecase(jobRepo, logger)
	listUC := usecase.NewListQueueUsecase(jobRepo)
	runUC := usecase.NewRunSimulationUsecase(jobRepo, logger)

	// Initialize router
	router := handler.NewRouter(&handler.RouterDeps{
		SubmitUC:        submitUC,
		ListUC:          listUC,
		RunUC:           runUC,
		Repo:            jobRepo,
		Logger:          logger,
		RateLimitPerMin: cfg.Server.RateLimit,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}
