package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ops-console/backend/internal/service"
)

type StatusHandler struct {
	svc *service.StatusService
}

func NewStatusHandler(svc *service.StatusService) *StatusHandler {
	return &StatusHandler{svc: svc}
}

// GetStatus godoc
// @Summary System status snapshot
// @Description Config-driven display fields plus live 24h metrics. Degrades to defaults when the datastore is down.
// @Tags status
// @Produce json
// @Success 200 {object} model.SystemStatus
// @Router /api/status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	// DB 장애 degrade는 서비스 안에서 처리되므로 여기서는 항상 200
	c.JSON(http.StatusOK, h.svc.GetStatus(c.Request.Context()))
}
