package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spoolsim/spoolsim/internal/domain"
)

// PolicyHandler handles scheduling-policy listing requests.
type PolicyHandler struct{}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler() *PolicyHandler {
	return &PolicyHandler{}
}

// List handles GET /api/v1/policies
func (h *PolicyHandler) List(c *gin.Context) {
	policies := []domain.PolicyInfo{
		{
			Name:        domain.PolicyFCFS,
			DisplayName: domain.PolicyFCFS.DisplayName(),
			Description: "Jobs print in arrival order.",
		},
		{
			Name:        domain.PolicySJF,
			DisplayName: domain.PolicySJF.DisplayName(),
			Description: "Jobs with the fewest pages print first; equal-length jobs keep arrival order.",
		},
		{
			Name:        domain.PolicyPriority,
			DisplayName: domain.PolicyPriority.DisplayName(),
			Description: "Lower priority value prints first; ties resolve in arrival order.",
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"policies": policies,
	})
}
