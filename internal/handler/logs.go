package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ops-console/backend/internal/model"
	"github.com/ops-console/backend/internal/service"
)

type LogsHandler struct {
	svc *service.LogsService
}

func NewLogsHandler(svc *service.LogsService) *LogsHandler {
	return &LogsHandler{svc: svc}
}

// GetLogs godoc
// @Summary List logs
// @Description Newest-first with optional category/severity filters. Resume-download messages are anonymized for non-admin requesters.
// @Tags logs
// @Produce json
// @Param category query string false "Log category"
// @Param severity query string false "Log level (info/warn/error)"
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {array} model.LogResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/logs [get]
func (h *LogsHandler) GetLogs(c *gin.Context) {
	filter := model.LogFilter{
		Category: c.Query("category"),
		Level:    c.Query("severity"), // severity 파라미터 → level 컬럼
		Limit:    100,
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filter.Limit = limit
	}

	res, err := h.svc.GetLogs(c.Request.Context(), filter, c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// RecordAction godoc
// @Summary Record a visitor action
// @Tags logs
// @Accept json
// @Produce json
// @Param request body model.ActionRequest true "Action payload"
// @Success 200 {object} model.ActionResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/action [post]
func (h *LogsHandler) RecordAction(c *gin.Context) {
	var req model.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.RecordAction(c.Request.Context(), req.Action, req.Details, c.ClientIP()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log action"})
		return
	}

	c.JSON(http.StatusOK, model.ActionResponse{Success: true})
}
