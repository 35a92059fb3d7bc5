package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/api/v1/services"
	"yolo-transcript/internal/app/model"
)

// IntegrationHandler manages connected cloud-storage accounts
type IntegrationHandler struct {
	service services.IntegrationService
	// redirectURL is where the browser lands after a successful OAuth
	// callback. When empty the callback answers with JSON.
	redirectURL string
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(service services.IntegrationService, redirectURL string) *IntegrationHandler {
	return &IntegrationHandler{service: service, redirectURL: redirectURL}
}

// List handles GET /api/integrations
//
// @Summary List connected integrations
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{integrations=[]dto.IntegrationResponse}
// @Router /integrations [get]
func (h *IntegrationHandler) List(c *gin.Context) {
	response, err := h.service.ListIntegrations(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"integrations": response})
}

// Disconnect handles DELETE /api/integrations/:provider
//
// @Summary Disconnect an integration
// @Tags integrations
// @Security BearerAuth
// @Param provider path string true "Provider" Enums(google-drive)
// @Success 204
// @Failure 404 {object} errors.APIError "Integration not found"
// @Router /integrations/{provider} [delete]
func (h *IntegrationHandler) Disconnect(c *gin.Context) {
	if err := h.service.Disconnect(c.Request.Context(), middleware.UserID(c), c.Param("provider")); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Connect handles GET /api/integrations/google-drive/connect
//
// @Summary Start Google Drive consent
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ConnectResponse
// @Failure 503 {object} errors.APIError "Google Drive not configured"
// @Router /integrations/google-drive/connect [get]
func (h *IntegrationHandler) Connect(c *gin.Context) {
	response, err := h.service.ConnectDrive(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Callback handles GET /api/integrations/google-drive/callback
// The user is identified by the OAuth state, not by a bearer token.
//
// @Summary Google OAuth redirect target
// @Tags integrations
// @Produce json
// @Param code query string false "Authorization code"
// @Param state query string false "Consent state"
// @Param error query string false "Consent error"
// @Success 200 {object} dto.IntegrationResponse
// @Success 302 "Redirect to the settings page"
// @Failure 400 {object} errors.APIError "Consent denied or code rejected"
// @Failure 403 {object} errors.APIError "Unknown or expired state"
// @Router /integrations/google-drive/callback [get]
func (h *IntegrationHandler) Callback(c *gin.Context) {
	var query dto.OAuthCallbackQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CompleteDrive(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if h.redirectURL != "" {
		target, err := url.Parse(h.redirectURL)
		if err == nil {
			q := target.Query()
			q.Set("integration", model.ProviderGoogleDrive)
			q.Set("status", string(response.Status))
			target.RawQuery = q.Encode()
			c.Redirect(http.StatusFound, target.String())
			return
		}
	}

	c.JSON(http.StatusOK, response)
}

// UpdateSettings handles PUT /api/integrations/google-drive/settings
//
// @Summary Update Google Drive settings
// @Tags integrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body dto.DriveSettingsRequest true "Settings"
// @Success 200 {object} dto.IntegrationResponse
// @Failure 400 {object} errors.APIError "Malformed request body"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 404 {object} errors.APIError "Integration not found"
// @Router /integrations/google-drive/settings [put]
func (h *IntegrationHandler) UpdateSettings(c *gin.Context) {
	var req dto.DriveSettingsRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateDriveSettings(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Sync handles POST /api/transcriptions/:id/sync-drive
//
// @Summary Copy a transcript to Google Drive
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcription ID"
// @Success 200 {object} dto.DriveSyncResponse
// @Failure 404 {object} errors.APIError "Transcription or Drive integration not found"
// @Failure 409 {object} errors.APIError "Transcription not completed"
// @Router /transcriptions/{id}/sync-drive [post]
func (h *IntegrationHandler) Sync(c *gin.Context) {
	response, err := h.service.SyncTranscription(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
