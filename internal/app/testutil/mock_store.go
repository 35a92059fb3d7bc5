package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

// MockStore is a testify mock implementing repository.Store
type MockStore struct {
	mock.Mock
}

var _ repository.Store = (*MockStore)(nil)

// NewMockStore creates a MockStore bound to t
func NewMockStore(t *testing.T) *MockStore {
	m := &MockStore{}
	m.Test(t)
	return m
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}

func (m *MockStore) CreateTranscription(ctx context.Context, t *model.Transcription) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockStore) GetTranscription(ctx context.Context, id string) (*model.Transcription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

func (m *MockStore) GetTranscriptionForUser(ctx context.Context, id, userID string) (*model.Transcription, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

func (m *MockStore) GetTranscriptionByTranscriptID(ctx context.Context, transcriptID string) (*model.Transcription, error) {
	args := m.Called(ctx, transcriptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

func (m *MockStore) ListTranscriptions(ctx context.Context, filter repository.TranscriptionFilter) ([]model.Transcription, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.Transcription), args.Int(1), args.Error(2)
}

func (m *MockStore) ListProcessing(ctx context.Context, limit int) ([]model.Transcription, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transcription), args.Error(1)
}

func (m *MockStore) ListForQualityReview(ctx context.Context, userID string, threshold float64, limit int) ([]model.Transcription, error) {
	args := m.Called(ctx, userID, threshold, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transcription), args.Error(1)
}

func (m *MockStore) UpdateFromProvider(ctx context.Context, id string, update model.TranscriptionUpdate) (bool, error) {
	args := m.Called(ctx, id, update)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) UpdateText(ctx context.Context, id, userID, text string) error {
	return m.Called(ctx, id, userID, text).Error(0)
}

func (m *MockStore) UpdateReview(ctx context.Context, id, userID string, reviewed bool, qualityScore *float64) error {
	return m.Called(ctx, id, userID, reviewed, qualityScore).Error(0)
}

func (m *MockStore) UpdateMetadata(ctx context.Context, id string, metadata model.TranscriptionMetadata) error {
	return m.Called(ctx, id, metadata).Error(0)
}

func (m *MockStore) DeleteDuplicates(ctx context.Context, transcriptID, keepID string) (int64, error) {
	args := m.Called(ctx, transcriptID, keepID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) GetAnalytics(ctx context.Context, userID string, since time.Time) (*model.UserAnalytics, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserAnalytics), args.Error(1)
}

func (m *MockStore) GetOrCreateCredits(ctx context.Context, userID string, trialCredits int) (*model.UserCredits, error) {
	args := m.Called(ctx, userID, trialCredits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserCredits), args.Error(1)
}

func (m *MockStore) DebitCredits(ctx context.Context, userID string, credits int) (*model.UserCredits, error) {
	args := m.Called(ctx, userID, credits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserCredits), args.Error(1)
}

func (m *MockStore) RefundCredits(ctx context.Context, userID string, credits int) error {
	return m.Called(ctx, userID, credits).Error(0)
}

func (m *MockStore) RecordUsage(ctx context.Context, usage *model.CreditUsage) error {
	return m.Called(ctx, usage).Error(0)
}

func (m *MockStore) ListTransactions(ctx context.Context, userID string, limit int) ([]model.CreditTransaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CreditTransaction), args.Error(1)
}

func (m *MockStore) ListUsage(ctx context.Context, userID string, limit int) ([]model.CreditUsage, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CreditUsage), args.Error(1)
}

func (m *MockStore) ApplyPurchase(ctx context.Context, event model.WebhookEvent, tx *model.CreditTransaction) error {
	return m.Called(ctx, event, tx).Error(0)
}

func (m *MockStore) UpsertIntegration(ctx context.Context, integration *model.Integration) error {
	return m.Called(ctx, integration).Error(0)
}

func (m *MockStore) GetIntegration(ctx context.Context, userID, provider string) (*model.Integration, error) {
	args := m.Called(ctx, userID, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Integration), args.Error(1)
}

func (m *MockStore) ListIntegrations(ctx context.Context, userID string) ([]model.Integration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Integration), args.Error(1)
}

func (m *MockStore) UpdateIntegrationSettings(ctx context.Context, id string, settings model.IntegrationSettings) error {
	return m.Called(ctx, id, settings).Error(0)
}

func (m *MockStore) SetIntegrationStatus(ctx context.Context, id string, status model.IntegrationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockStore) CreateVocabulary(ctx context.Context, v *model.CustomVocabulary) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockStore) UpdateVocabulary(ctx context.Context, v *model.CustomVocabulary) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockStore) DeleteVocabulary(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockStore) GetVocabulary(ctx context.Context, id, userID string) (*model.CustomVocabulary, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomVocabulary), args.Error(1)
}

func (m *MockStore) GetDefaultVocabulary(ctx context.Context, userID string) (*model.CustomVocabulary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomVocabulary), args.Error(1)
}

func (m *MockStore) ListVocabularies(ctx context.Context, userID string) ([]model.CustomVocabulary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CustomVocabulary), args.Error(1)
}
