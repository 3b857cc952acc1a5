package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/spoolsim/spoolsim/internal/delivery/http/middleware"
	"github.com/spoolsim/spoolsim/internal/repository"
	"github.com/spoolsim/spoolsim/internal/usecase"
)

// maxBodyBytes bounds job-submission payloads.
const maxBodyBytes = 4 << 10

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	SubmitUC        *usecase.SubmitJobUsecase
	ListUC          *usecase.ListQueueUsecase
	RunUC           *usecase.RunSimulationUsecase
	Repo            repository.JobRepository
	Logger          *zap.Logger
	RateLimitPerMin int
}

// NewRouter creates and configures the Gin router with all routes and middleware.
func NewRouter(deps *RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(deps.Logger))

	// Metrics endpoint (no rate limiting)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check (no rate limiting)
		healthHandler := NewHealthHandler(deps.Repo, deps.Logger)
		v1.GET("/health", healthHandler.Health)

		// Policy catalog
		policyHandler := NewPolicyHandler()
		v1.GET("/policies", policyHandler.List)

		// Queue (with rate limiting and body limit on writes)
		queueHandler := NewQueueHandler(deps.SubmitUC, deps.ListUC, deps.Logger)
		v1.POST("/jobs",
			middleware.RateLimiter(deps.RateLimitPerMin),
			middleware.BodySizeLimit(maxBodyBytes),
			queueHandler.Submit,
		)
		v1.GET("/jobs", queueHandler.List)

		// Simulations
		simHandler := NewSimulationHandler(deps.RunUC, deps.Logger)
		v1.POST("/simulations/:policy", simHandler.Run)

		// WebSocket timeline playback
		wsHandler := NewWebSocketHandler(deps.RunUC, deps.Logger)
		v1.GET("/simulations/:policy/stream", wsHandler.Stream)
	}

	return router
}
