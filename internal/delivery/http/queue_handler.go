package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spoolsim/spoolsim/internal/domain"
	"github.com/spoolsim/spoolsim/internal/usecase"
)

// QueueHandler handles HTTP requests for the print queue.
type QueueHandler struct {
	submitUC *usecase.SubmitJobUsecase
	listUC   *usecase.ListQueueUsecase
	logger   *zap.Logger
}

// NewQueueHandler creates a new QueueHandler.
func NewQueueHandler(submitUC *usecase.SubmitJobUsecase, listUC *usecase.ListQueueUsecase, logger *zap.Logger) *QueueHandler {
	return &QueueHandler{
		submitUC: submitUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Submit handles POST /api/v1/jobs
func (h *QueueHandler) Submit(c *gin.Context) {
	var req domain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	resp, err := h.submitUC.Execute(&req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidJobParameters):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrCapacityExceeded):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Submit job failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/v1/jobs
func (h *QueueHandler) List(c *gin.Context) {
	jobs := h.listUC.Execute()
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}
