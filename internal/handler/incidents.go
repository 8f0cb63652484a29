package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ops-console/backend/internal/model"
	"github.com/ops-console/backend/internal/service"
)

type IncidentsHandler struct {
	svc *service.IncidentsService
}

func NewIncidentsHandler(svc *service.IncidentsService) *IncidentsHandler {
	return &IncidentsHandler{svc: svc}
}

// GetIncidents godoc
// @Summary List incidents
// @Tags incidents
// @Produce json
// @Success 200 {array} model.IncidentResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/incidents [get]
func (h *IncidentsHandler) GetIncidents(c *gin.Context) {
	res, err := h.svc.GetIncidents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch incidents"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateIncident godoc
// @Summary Create incident (admin)
// @Tags incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateIncidentRequest true "Incident payload"
// @Success 200 {object} model.CreateIncidentResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/admin/incidents [post]
func (h *IncidentsHandler) CreateIncident(c *gin.Context) {
	var req model.CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id, err := h.svc.CreateIncident(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create incident"})
		return
	}

	c.JSON(http.StatusOK, model.CreateIncidentResponse{
		Status:     "success",
		IncidentID: id,
	})
}
