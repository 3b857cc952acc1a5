package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spoolsim/spoolsim/internal/domain"
	"github.com/spoolsim/spoolsim/internal/usecase"
)

// SimulationHandler handles HTTP requests for simulation runs.
type SimulationHandler struct {
	runUC  *usecase.RunSimulationUsecase
	logger *zap.Logger
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(runUC *usecase.RunSimulationUsecase, logger *zap.Logger) *SimulationHandler {
	return &SimulationHandler{
		runUC:  runUC,
		logger: logger,
	}
}

// Run handles POST /api/v1/simulations/:policy
func (h *SimulationHandler) Run(c *gin.Context) {
	policy := domain.Policy(c.Param("policy"))

	report, err := h.runUC.Execute(policy)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownPolicy):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrEmptyQueue):
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot run simulation: the print queue is empty"})
		default:
			h.logger.Error("Simulation failed", zap.String("policy", string(policy)), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
