package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/services"
)

// UploadHandler stores media before transcription
type UploadHandler struct {
	service services.StorageService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(service services.StorageService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/upload
// Accepts a multipart "file" field and returns a URL the provider can fetch
//
// @Summary Upload media
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Audio or video file"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} errors.APIError "No file uploaded"
// @Failure 422 {object} errors.APIError "Unsupported or oversized file"
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxUploadBytes+1<<20)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	response, err := h.service.UploadFile(c.Request.Context(), middleware.UserID(c), file, header)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
