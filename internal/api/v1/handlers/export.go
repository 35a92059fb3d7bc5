package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/api/v1/services"
	"yolo-transcript/internal/app/export"
)

// ExportHandler handles export-related HTTP requests
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

// Export handles GET /api/transcriptions/export
// The workbook is buffered so that a failure can still be reported as JSON.
//
// @Summary Export transcriptions as xlsx
// @Tags transcriptions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(processing, completed, error)
// @Param limit query int false "Maximum rows" default(1000)
// @Success 200 {file} file
// @Failure 400 {object} errors.APIError "Invalid query"
// @Router /transcriptions/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var query dto.ExportQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.service.ExportTranscriptions(c.Request.Context(), middleware.UserID(c), query, &buf); err != nil {
		middleware.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("transcriptions-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
