package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ops-console/backend/internal/db"
	"github.com/ops-console/backend/internal/model"
)

// 업로드 허용 최대 크기 (원본은 200x200 jpeg라 1MB면 충분)
const maxPhotoBytes = 1 << 20

type PhotoHandler struct {
	repo *db.Postgres
}

func NewPhotoHandler(repo *db.Postgres) *PhotoHandler {
	return &PhotoHandler{repo: repo}
}

// GetProfilePhoto godoc
// @Summary Stored profile photo binary
// @Tags photo
// @Produce image/jpeg
// @Success 200 {file} binary
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/profile-photo [get]
func (h *PhotoHandler) GetProfilePhoto(c *gin.Context) {
	photo, err := h.repo.GetLatestProfilePhoto(c.Request.Context())
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No photo found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch photo"})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, photo.MimeType, photo.ImageData)
}

// UploadProfilePhoto godoc
// @Summary Replace the stored profile photo (admin)
// @Tags photo
// @Accept image/jpeg
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PhotoUploadResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/admin/profile-photo [post]
func (h *PhotoHandler) UploadProfilePhoto(c *gin.Context) {
	mimeType := c.ContentType()
	if mimeType != "image/jpeg" && mimeType != "image/png" && mimeType != "image/webp" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported content type"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPhotoBytes+1))
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image body"})
		return
	}
	if len(data) > maxPhotoBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return
	}

	if err := h.repo.ReplaceProfilePhoto(c.Request.Context(), data, mimeType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		return
	}

	c.JSON(http.StatusOK, model.PhotoUploadResponse{
		Status: "success",
		Bytes:  len(data),
	})
}
