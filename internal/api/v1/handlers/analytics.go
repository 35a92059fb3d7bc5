package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/api/v1/services"
)

// AnalyticsHandler serves usage statistics
type AnalyticsHandler struct {
	service services.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Analytics handles GET /api/analytics
//
// @Summary Usage statistics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserAnalytics
// @Router /analytics [get]
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	response, err := h.service.GetAnalytics(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Quality handles GET /api/quality
// Lists completed transcripts scoring below the threshold
//
// @Summary Low quality transcripts
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param threshold query number false "Quality threshold" default(0.8)
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {object} dto.QualityResponse
// @Failure 400 {object} errors.APIError "Invalid query"
// @Router /quality [get]
func (h *AnalyticsHandler) Quality(c *gin.Context) {
	var query dto.QualityQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetQualityQueue(c.Request.Context(), middleware.UserID(c), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
