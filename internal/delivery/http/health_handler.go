package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spoolsim/spoolsim/internal/repository"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	repo   repository.JobRepository
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(repo repository.JobRepository, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{repo: repo, logger: logger}
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"queue_depth": h.repo.Len(),
	})
}
