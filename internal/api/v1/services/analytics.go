package services

import (
	"context"
	"time"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

// AnalyticsWindow is the look-back period of usage statistics
const AnalyticsWindow = 30 * 24 * time.Hour

// AnalyticsServiceImpl implements AnalyticsService
type AnalyticsServiceImpl struct {
	store repository.TranscriptionDAO
	now   func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(store repository.TranscriptionDAO) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{store: store, now: time.Now}
}

// GetAnalytics returns totals and the last 30 days of activity
func (s *AnalyticsServiceImpl) GetAnalytics(ctx context.Context, userID string) (*model.UserAnalytics, error) {
	since := s.now().UTC().Add(-AnalyticsWindow)
	analytics, err := s.store.GetAnalytics(ctx, userID, since)
	if err != nil {
		return nil, errors.NewInternalError("Failed to compute analytics")
	}
	if analytics.Daily == nil {
		analytics.Daily = []model.DailyCount{}
	}
	return analytics, nil
}

// GetQualityQueue lists completed, unreviewed transcripts scoring below
// the threshold
func (s *AnalyticsServiceImpl) GetQualityQueue(ctx context.Context, userID string, query dto.QualityQuery) (*dto.QualityResponse, error) {
	rows, err := s.store.ListForQualityReview(ctx, userID, query.Threshold, query.Limit)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list transcriptions for review")
	}
	return &dto.QualityResponse{
		Threshold:      query.Threshold,
		Transcriptions: dto.ToTranscriptionResponses(rows),
	}, nil
}
