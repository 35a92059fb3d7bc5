package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/services"
)

// SignatureHeader carries the payment provider's HMAC signature
const SignatureHeader = "Paddle-Signature"

const maxWebhookBytes = 1 << 20

// WebhookHandler receives payment provider notifications
type WebhookHandler struct {
	service services.WebhookService
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(service services.WebhookService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// Handle handles POST /api/webhook
// The raw body is passed through untouched so the signature can be verified.
//
// @Summary Payment webhook
// @Description Verifies the Paddle-Signature HMAC and grants credits for completed transactions
// @Tags billing
// @Accept json
// @Produce json
// @Param Paddle-Signature header string true "ts=<unix>;h1=<hex hmac>"
// @Success 200 {object} dto.WebhookResponse
// @Failure 400 {object} errors.APIError "Malformed payload"
// @Failure 401 {object} errors.APIError "Invalid signature"
// @Router /webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes+1))
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Failed to read request body"))
		return
	}
	if len(body) > maxWebhookBytes {
		middleware.HandleError(c, errors.NewBadRequestError("Request body too large"))
		return
	}

	response, err := h.service.HandleWebhook(c.Request.Context(), c.GetHeader(SignatureHeader), body)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
