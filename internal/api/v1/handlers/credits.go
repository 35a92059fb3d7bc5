package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/services"
)

// CreditsHandler serves the caller's credit balance
type CreditsHandler struct {
	service services.CreditsService
}

// NewCreditsHandler creates a new credits handler
func NewCreditsHandler(service services.CreditsService) *CreditsHandler {
	return &CreditsHandler{service: service}
}

// Get handles GET /api/credits
//
// @Summary Credit balance and history
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CreditsResponse
// @Failure 401 {object} errors.APIError "Missing or invalid token"
// @Router /credits [get]
func (h *CreditsHandler) Get(c *gin.Context) {
	response, err := h.service.GetCredits(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
