package test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/api/v1/handlers"
)

func TestWebhookHandler_Handle(t *testing.T) {
	payload := []byte(`{"event_id":"evt_1","event_type":"transaction.completed","data":{"id":"txn_1"}}`)

	tests := []struct {
		name           string
		signature      string
		setupMocks     func(*mock.Mock)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:      "processed",
			signature: "ts=1710408598;h1=abc",
			setupMocks: func(m *mock.Mock) {
				m.On("HandleWebhook", mock.Anything, "ts=1710408598;h1=abc", payload).
					Return(&dto.WebhookResponse{Received: true, Status: dto.WebhookProcessed, Credits: 10}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["received"])
				assert.Equal(t, "processed", body["status"])
				assert.Equal(t, float64(10), body["credits"])
			},
		},
		{
			name:      "invalid signature",
			signature: "ts=1;h1=forged",
			setupMocks: func(m *mock.Mock) {
				m.On("HandleWebhook", mock.Anything, "ts=1;h1=forged", payload).
					Return(nil, errors.NewUnauthorizedError("Invalid signature"))
			},
			expectedStatus: http.StatusUnauthorized,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Invalid signature", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(&mockServices.WebhookService.Mock)

			handler := handlers.NewWebhookHandler(mockServices.WebhookService)
			router.POST("/api/webhook", handler.Handle)

			req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(handlers.SignatureHeader, tt.signature)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validateBody(t, decode(t, rec))
			mockServices.WebhookService.AssertExpectations(t)
		})
	}
}

func TestWebhookHandler_BodyTooLarge(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	handler := handlers.NewWebhookHandler(mockServices.WebhookService)
	router.POST("/api/webhook", handler.Handle)

	req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(bytes.Repeat([]byte("a"), 1<<20+10)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockServices.WebhookService.AssertNotCalled(t, "HandleWebhook", mock.Anything, mock.Anything, mock.Anything)
}
