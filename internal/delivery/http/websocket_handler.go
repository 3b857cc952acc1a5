package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/spoolsim/spoolsim/internal/domain"
	"github.com/spoolsim/spoolsim/internal/usecase"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development; restrict in production
	},
}

// streamInterval paces timeline playback so clients can render it live.
const streamInterval = 250 * time.Millisecond

// WebSocketHandler streams simulation timelines over WebSocket, one per-job
// record per tick, followed by the aggregate averages.
type WebSocketHandler struct {
	runUC  *usecase.RunSimulationUsecase
	logger *zap.Logger
}

// NewWebSocketHandler creates a new WebSocketHandler.
func NewWebSocketHandler(runUC *usecase.RunSimulationUsecase, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		runUC:  runUC,
		logger: logger,
	}
}

// Stream handles GET /api/v1/simulations/:policy/stream (WebSocket upgrade)
func (h *WebSocketHandler) Stream(c *gin.Context) {
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

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.logger.Debug("WebSocket stream opened", zap.String("policy", string(policy)))

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	next := 0
	for range ticker.C {
		if next < len(report.Jobs) {
			if err := conn.WriteJSON(gin.H{"event": "job", "record": report.Jobs[next]}); err != nil {
				h.logger.Debug("WebSocket write failed (client disconnected)", zap.Error(err))
				return
			}
			next++
			continue
		}

		_ = conn.WriteJSON(gin.H{
			"event":               "summary",
			"policy":              report.Policy,
			"avg_wait_time":       report.AvgWaitTime,
			"avg_turnaround_time": report.AvgTurnaroundTime,
		})
		return
	}
}
