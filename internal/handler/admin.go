package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ops-console/backend/internal/db"
	"github.com/ops-console/backend/internal/model"
)

// AdminHandler - Config Store 수동 갱신 (역할/이력서 URL 등)
type AdminHandler struct {
	repo *db.Postgres
}

func NewAdminHandler(repo *db.Postgres) *AdminHandler {
	return &AdminHandler{repo: repo}
}

// UpdateConfig godoc
// @Summary Upsert a config entry (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Config key"
// @Param request body model.ConfigUpdateRequest true "New value"
// @Success 200 {object} model.ConfigUpdateResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/admin/config/{key} [put]
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	key := c.Param("key")

	var req model.ConfigUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.repo.UpsertConfig(c.Request.Context(), key, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update config"})
		return
	}

	c.JSON(http.StatusOK, model.ConfigUpdateResponse{
		Status: "success",
		Key:    key,
	})
}
