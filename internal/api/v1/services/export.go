package services

import (
	"context"
	"fmt"
	"io"

	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/app/export"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

// ExportServiceImpl implements the ExportService interface
type ExportServiceImpl struct {
	repo repository.TranscriptionDAO
}

// NewExportService creates a new export service
func NewExportService(repo repository.TranscriptionDAO) *ExportServiceImpl {
	return &ExportServiceImpl{
		repo: repo,
	}
}

// ExportTranscriptions writes the user's transcriptions as an xlsx workbook
func (s *ExportServiceImpl) ExportTranscriptions(ctx context.Context, userID string, query dto.ExportQuery, writer io.Writer) error {
	rows, _, err := s.repo.ListTranscriptions(ctx, repository.TranscriptionFilter{
		UserID: userID,
		Status: model.TranscriptionStatus(query.Status),
		Limit:  query.Limit,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch transcriptions: %w", err)
	}
	return export.WriteXLSX(rows, writer)
}
