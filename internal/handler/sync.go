package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ops-console/backend/internal/model"
	"github.com/ops-console/backend/internal/service"
)

type SyncHandler struct {
	scheduler *service.Scheduler
}

func NewSyncHandler(scheduler *service.Scheduler) *SyncHandler {
	return &SyncHandler{scheduler: scheduler}
}

// TriggerSync godoc
// @Summary Run one GitHub + Calendar sync pass
// @Description Synchronous pass, used by cron hooks or manual refresh.
// @Tags sync
// @Produce json
// @Success 200 {object} model.SyncResponse
// @Failure 500 {object} model.SyncResponse
// @Router /api/sync [get]
func (h *SyncHandler) TriggerSync(c *gin.Context) {
	errs := h.scheduler.RunOnce(c.Request.Context())
	if len(errs) > 0 {
		msgs := make(map[string]string, len(errs))
		for source, err := range errs {
			msgs[source] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, model.SyncResponse{
			Success: false,
			Message: "Sync failed",
			Errors:  msgs,
		})
		return
	}

	c.JSON(http.StatusOK, model.SyncResponse{
		Success: true,
		Message: "Sync Triggered",
	})
}
