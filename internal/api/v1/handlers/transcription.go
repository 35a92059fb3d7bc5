package handlers

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/api/v1/services"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service       services.TranscriptionService
	callbackToken string
}

// NewTranscriptionHandler creates a new transcription handler.
// callbackToken authenticates provider callbacks; an empty token rejects them all.
func NewTranscriptionHandler(service services.TranscriptionService, callbackToken string) *TranscriptionHandler {
	return &TranscriptionHandler{
		service:       service,
		callbackToken: callbackToken,
	}
}

// Create handles POST /api/transcribe
// Debits credits and starts a transcription job
//
// @Summary Start a transcription job
// @Description Debits max(1, ceil(duration/360)) credits and submits the audio to the speech-to-text provider
// @Tags transcriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transcription body dto.CreateTranscriptionRequest true "Transcription job"
// @Success 201 {object} dto.CreateTranscriptionResponse "Job started"
// @Failure 400 {object} errors.APIError "Malformed request body"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 401 {object} errors.APIError "Missing or invalid token"
// @Failure 402 {object} errors.APIError "Not enough credits"
// @Failure 429 {object} errors.APIError "Rate limit exceeded"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Failure 503 {object} errors.APIError "Provider unavailable"
// @Router /transcribe [post]
func (h *TranscriptionHandler) Create(c *gin.Context) {
	var req dto.CreateTranscriptionRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateTranscription(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Get handles GET /api/transcriptions/:id
//
// @Summary Get a transcription
// @Tags transcriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcription ID"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 401 {object} errors.APIError "Missing or invalid token"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Router /transcriptions/{id} [get]
func (h *TranscriptionHandler) Get(c *gin.Context) {
	response, err := h.service.GetTranscription(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/transcriptions
// Lists the caller's transcriptions, newest first
//
// @Summary List transcriptions
// @Tags transcriptions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "Status filter" Enums(processing, completed, error)
// @Success 200 {object} dto.PaginatedTranscriptionsResponse
// @Header 200 {integer} X-Total-Count "Total matching transcriptions"
// @Failure 400 {object} errors.APIError "Invalid query"
// @Failure 401 {object} errors.APIError "Missing or invalid token"
// @Router /transcriptions [get]
func (h *TranscriptionHandler) List(c *gin.Context) {
	var query dto.ListTranscriptionsQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ListTranscriptions(c.Request.Context(), middleware.UserID(c), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(response.Pagination.Total))
	c.JSON(http.StatusOK, response)
}

// Update handles PATCH /api/transcriptions/:id
// Replaces the transcript text after a human edit
//
// @Summary Edit transcript text
// @Tags transcriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcription ID"
// @Param transcription body dto.UpdateTranscriptionRequest true "New text"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 400 {object} errors.APIError "Malformed request body"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Router /transcriptions/{id} [patch]
func (h *TranscriptionHandler) Update(c *gin.Context) {
	var req dto.UpdateTranscriptionRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateText(c.Request.Context(), middleware.UserID(c), c.Param("id"), *req.TranscriptionText)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Review handles PATCH /api/transcriptions/:id/review
//
// @Summary Mark a transcription reviewed
// @Tags transcriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcription ID"
// @Param review body dto.ReviewTranscriptionRequest true "Review outcome"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 400 {object} errors.APIError "Malformed request body"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Router /transcriptions/{id}/review [patch]
func (h *TranscriptionHandler) Review(c *gin.Context) {
	var req dto.ReviewTranscriptionRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Review(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Refresh handles POST /api/transcriptions/:id/refresh
// Checks the provider immediately instead of waiting for the poller
//
// @Summary Refresh job status from the provider
// @Tags transcriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcription ID"
// @Success 200 {object} dto.RefreshResponse
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 503 {object} errors.APIError "Provider unavailable"
// @Router /transcriptions/{id}/refresh [post]
func (h *TranscriptionHandler) Refresh(c *gin.Context) {
	response, err := h.service.Refresh(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Utterances handles GET /api/transcriptions/:id/utterances
//
// @Summary Speaker utterances
// @Tags transcriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcription ID"
// @Success 200 {object} dto.UtterancesResponse
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 409 {object} errors.APIError "Transcription not completed"
// @Router /transcriptions/{id}/utterances [get]
func (h *TranscriptionHandler) Utterances(c *gin.Context) {
	response, err := h.service.GetUtterances(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Sentiment handles GET /api/transcriptions/:id/sentiment
//
// @Summary Sentence sentiment
// @Tags transcriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcription ID"
// @Success 200 {object} dto.SentimentResponse
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 409 {object} errors.APIError "Transcription not completed"
// @Router /transcriptions/{id}/sentiment [get]
func (h *TranscriptionHandler) Sentiment(c *gin.Context) {
	response, err := h.service.GetSentiment(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Callback handles POST /api/transcribe/callback
// The provider calls this when a job finishes. The token query parameter
// must match the configured callback token.
//
// @Summary Provider completion callback
// @Tags transcriptions
// @Accept json
// @Produce json
// @Param token query string true "Callback token"
// @Param callback body dto.CallbackRequest true "Provider notification"
// @Success 200 {object} object{received=bool}
// @Failure 401 {object} errors.APIError "Invalid callback token"
// @Router /transcribe/callback [post]
func (h *TranscriptionHandler) Callback(c *gin.Context) {
	token := c.Query("token")
	if h.callbackToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.callbackToken)) != 1 {
		middleware.HandleError(c, errors.NewUnauthorizedError("Invalid callback token"))
		return
	}

	var req dto.CallbackRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.HandleCallback(c.Request.Context(), req.TranscriptID); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
