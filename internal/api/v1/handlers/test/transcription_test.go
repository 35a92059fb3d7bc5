package test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/api/v1/handlers"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/testutil"
)

func TestTranscriptionHandler_Create(t *testing.T) {
	validRequest := map[string]interface{}{
		"audio_url":        "https://cdn.example.com/call.mp3",
		"file_name":        "call.mp3",
		"file_size":        1024,
		"file_type":        "audio/mpeg",
		"duration_seconds": 400,
	}

	tests := []struct {
		name           string
		request        map[string]interface{}
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:    "successful transcription creation",
			request: validRequest,
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("CreateTranscription", mock.Anything, testutil.TestUserID,
					mock.MatchedBy(func(req *dto.CreateTranscriptionRequest) bool {
						return req.DurationSeconds == 400 && req.FileName == "call.mp3"
					})).
					Return(&dto.CreateTranscriptionResponse{
						Transcription: dto.TranscriptionResponse{
							ID:           "t1",
							TranscriptID: testutil.TestTranscriptID,
							Status:       model.StatusProcessing,
						},
						CreditsCharged:   2,
						CreditsRemaining: 3,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, float64(2), body["credits_charged"])
				assert.Equal(t, float64(3), body["credits_remaining"])
				transcription := body["transcription"].(map[string]interface{})
				assert.Equal(t, "processing", transcription["status"])
			},
		},
		{
			name: "validation error - missing audio url",
			request: map[string]interface{}{
				"file_name": "call.mp3",
				"file_type": "audio/mpeg",
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				assert.NotNil(t, body["details"])
			},
		},
		{
			name: "validation error - not a media type",
			request: map[string]interface{}{
				"audio_url": "https://cdn.example.com/notes.pdf",
				"file_name": "notes.pdf",
				"file_type": "application/pdf",
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				details := body["details"].(map[string]interface{})
				assert.Contains(t, details, "file_type")
			},
		},
		{
			name:    "insufficient credits",
			request: validRequest,
			setupMocks: func(ms *testutil.MockServices) {
				apiErr := errors.NewPaymentRequiredError("Insufficient credits")
				apiErr.Details = map[string]string{"required": "2"}
				ms.TranscriptionService.On("CreateTranscription", mock.Anything, testutil.TestUserID, mock.Anything).
					Return(nil, apiErr)
			},
			expectedStatus: http.StatusPaymentRequired,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Insufficient credits", body["error"])
				assert.Equal(t, "payment_required", body["kind"])
				assert.Equal(t, "2", body["details"].(map[string]interface{})["required"])
				assert.NotEmpty(t, body["request_id"])
			},
		},
		{
			name:    "service error",
			request: validRequest,
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("CreateTranscription", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.NewInternalError("Failed to start transcription"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "internal", body["kind"])
				assert.Equal(t, "Failed to start transcription", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService, "cb-secret")
			router.POST("/api/transcribe", asUser(testutil.TestUserID), handler.Create)

			rec := doJSON(t, router, http.MethodPost, "/api/transcribe", tt.request)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validateBody(t, decode(t, rec))
			mockServices.TranscriptionService.AssertExpectations(t)
		})
	}
}

func TestTranscriptionHandler_Get(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService, "")
	router.GET("/api/transcriptions/:id", asUser(testutil.TestOtherUserID), handler.Get)

	mockServices.TranscriptionService.On("GetTranscription", mock.Anything, testutil.TestOtherUserID, "t1").
		Return(nil, errors.NewNotFoundError("Transcription"))

	rec := doJSON(t, router, http.MethodGet, "/api/transcriptions/t1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Transcription not found", decode(t, rec)["error"])
}

func TestTranscriptionHandler_List(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService, "")
	router.GET("/api/transcriptions", asUser(testutil.TestUserID), handler.List)

	mockServices.TranscriptionService.On("ListTranscriptions", mock.Anything, testutil.TestUserID,
		dto.ListTranscriptionsQuery{Page: 2, Limit: 10, Status: "completed"}).
		Return(&dto.PaginatedTranscriptionsResponse{
			Transcriptions: []dto.TranscriptionResponse{{ID: "t1"}},
			Pagination:     dto.NewPagination(2, 10, 11),
		}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/transcriptions?page=2&limit=10&status=completed", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "11", rec.Header().Get("X-Total-Count"))

	rec = doJSON(t, router, http.MethodGet, "/api/transcriptions?status=queued", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranscriptionHandler_Update(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService, "")
	router.PATCH("/api/transcriptions/:id", asUser(testutil.TestUserID), handler.Update)

	mockServices.TranscriptionService.On("UpdateText", mock.Anything, testutil.TestUserID, "t1", "").
		Return(&dto.TranscriptionResponse{ID: "t1"}, nil).Once()

	rec := doJSON(t, router, http.MethodPatch, "/api/transcriptions/t1", map[string]interface{}{"transcription_text": ""})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/transcriptions/t1", map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	mockServices.TranscriptionService.AssertExpectations(t)
}

func TestTranscriptionHandler_Callback(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectCall     bool
		expectedStatus int
	}{
		{"valid token", "/api/transcribe/callback?token=cb-secret", true, http.StatusOK},
		{"wrong token", "/api/transcribe/callback?token=guess", false, http.StatusUnauthorized},
		{"missing token", "/api/transcribe/callback", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService, "cb-secret")
			router.POST("/api/transcribe/callback", handler.Callback)

			if tt.expectCall {
				mockServices.TranscriptionService.On("HandleCallback", mock.Anything, testutil.TestTranscriptID).Return(nil).Once()
			}

			rec := doJSON(t, router, http.MethodPost, tt.path, map[string]interface{}{
				"transcript_id": testutil.TestTranscriptID,
				"status":        "completed",
			})
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if !tt.expectCall {
				mockServices.TranscriptionService.AssertNotCalled(t, "HandleCallback", mock.Anything, mock.Anything)
			}
			mockServices.TranscriptionService.AssertExpectations(t)
		})
	}
}
