package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ops-console/backend/internal/service"
)

type DeploymentsHandler struct {
	svc *service.DeploymentsService
}

func NewDeploymentsHandler(svc *service.DeploymentsService) *DeploymentsHandler {
	return &DeploymentsHandler{svc: svc}
}

// GetDeployments godoc
// @Summary List deployments
// @Tags deployments
// @Produce json
// @Success 200 {array} model.DeploymentResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/deployments [get]
func (h *DeploymentsHandler) GetDeployments(c *gin.Context) {
	res, err := h.svc.GetDeployments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deployments"})
		return
	}
	c.JSON(http.StatusOK, res)
}
