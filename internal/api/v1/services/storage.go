package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/app/storage"
)

// MaxUploadBytes bounds a single media upload
const MaxUploadBytes = 2 << 30

// StorageServiceImpl implements StorageService
type StorageServiceImpl struct {
	store  storage.MediaStore
	logger *zap.Logger
}

// NewStorageService creates a new storage service
func NewStorageService(store storage.MediaStore, logger *zap.Logger) *StorageServiceImpl {
	return &StorageServiceImpl{store: store, logger: logger}
}

// UploadFile stores an uploaded audio or video file
func (s *StorageServiceImpl) UploadFile(ctx context.Context, userID string, file multipart.File, header *multipart.FileHeader) (*dto.UploadResponse, error) {
	contentType := header.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "audio/") && !strings.HasPrefix(contentType, "video/") {
		return nil, errors.NewValidationError("Invalid upload", map[string]string{
			"file": "only audio and video files can be uploaded",
		})
	}
	if header.Size > MaxUploadBytes {
		return nil, errors.NewValidationError("Invalid upload", map[string]string{
			"file": "file is larger than 2 GiB",
		})
	}

	name := filepath.Base(header.Filename)
	obj, err := s.store.Put(ctx, userID, name, contentType, file, header.Size)
	if err != nil {
		s.logger.Error("failed to store upload", zap.String("user_id", userID), zap.String("file_name", name), zap.Error(err))
		return nil, errors.NewInternalError("Failed to upload file")
	}

	return &dto.UploadResponse{
		URL:         obj.URL,
		Key:         obj.Key,
		Name:        obj.Name,
		Size:        obj.Size,
		ContentType: obj.ContentType,
		Storage:     obj.Backend,
	}, nil
}
