package test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/api/v1/handlers"
	"yolo-transcript/internal/app/export"
	"yolo-transcript/internal/app/testutil"
)

func TestExportHandler_Export(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	handler := handlers.NewExportHandler(mockServices.ExportService)
	router.GET("/api/transcriptions/export", asUser(testutil.TestUserID), handler.Export)

	mockServices.ExportService.On("ExportTranscriptions", mock.Anything, testutil.TestUserID,
		dto.ExportQuery{Status: "completed", Limit: 1000}, mock.Anything).
		Return([]byte("PK\x03\x04"), nil).Once()

	rec := doJSON(t, router, http.MethodGet, "/api/transcriptions/export?status=completed", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.Equal(t, []byte("PK\x03\x04"), rec.Body.Bytes())
}

func TestExportHandler_ErrorIsJSON(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	handler := handlers.NewExportHandler(mockServices.ExportService)
	router.GET("/api/transcriptions/export", asUser(testutil.TestUserID), handler.Export)

	mockServices.ExportService.On("ExportTranscriptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewInternalError("Failed to export transcriptions"))

	rec := doJSON(t, router, http.MethodGet, "/api/transcriptions/export", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to export transcriptions", decode(t, rec)["error"])
}

func TestUploadHandler_Upload(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	handler := handlers.NewUploadHandler(mockServices.StorageService)
	router.POST("/api/upload", asUser(testutil.TestUserID), handler.Upload)

	mockServices.StorageService.On("UploadFile", mock.Anything, testutil.TestUserID, mock.Anything,
		mock.MatchedBy(func(h *multipart.FileHeader) bool { return h.Filename == "call.mp3" })).
		Return(&dto.UploadResponse{URL: "https://minio.local/media/uploads/x.mp3", Name: "call.mp3", Size: 5, Storage: "minio"}, nil).Once()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "call.mp3")
	require.NoError(t, err)
	_, err = part.Write([]byte("ID3\x00\x00"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "minio", decode(t, rec)["storage"])
	mockServices.StorageService.AssertExpectations(t)
}

func TestUploadHandler_MissingFile(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	handler := handlers.NewUploadHandler(mockServices.StorageService)
	router.POST("/api/upload", asUser(testutil.TestUserID), handler.Upload)

	rec := doJSON(t, router, http.MethodPost, "/api/upload", map[string]interface{}{"file": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file uploaded", decode(t, rec)["error"])
}
