package testutil

import (
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/mock"

	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/app/blog"
	"yolo-transcript/internal/app/model"
)

// MockServices bundles a mock for every API service
type MockServices struct {
	TranscriptionService *MockTranscriptionService
	CreditsService       *MockCreditsService
	WebhookService       *MockWebhookService
	VocabularyService    *MockVocabularyService
	IntegrationService   *MockIntegrationService
	AnalyticsService     *MockAnalyticsService
	BlogService          *MockBlogService
	ExportService        *MockExportService
	StorageService       *MockStorageService
}

// NewMockServices creates service mocks bound to t
func NewMockServices(t *testing.T) *MockServices {
	ms := &MockServices{
		TranscriptionService: &MockTranscriptionService{},
		CreditsService:       &MockCreditsService{},
		WebhookService:       &MockWebhookService{},
		VocabularyService:    &MockVocabularyService{},
		IntegrationService:   &MockIntegrationService{},
		AnalyticsService:     &MockAnalyticsService{},
		BlogService:          &MockBlogService{},
		ExportService:        &MockExportService{},
		StorageService:       &MockStorageService{},
	}
	ms.TranscriptionService.Test(t)
	ms.CreditsService.Test(t)
	ms.WebhookService.Test(t)
	ms.VocabularyService.Test(t)
	ms.IntegrationService.Test(t)
	ms.AnalyticsService.Test(t)
	ms.BlogService.Test(t)
	ms.ExportService.Test(t)
	ms.StorageService.Test(t)
	return ms
}

// MockTranscriptionService mocks services.TranscriptionService
type MockTranscriptionService struct {
	mock.Mock
}

func (m *MockTranscriptionService) CreateTranscription(ctx context.Context, userID string, req *dto.CreateTranscriptionRequest) (*dto.CreateTranscriptionResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateTranscriptionResponse), args.Error(1)
}

func (m *MockTranscriptionService) GetTranscription(ctx context.Context, userID, id string) (*dto.TranscriptionResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

func (m *MockTranscriptionService) ListTranscriptions(ctx context.Context, userID string, query dto.ListTranscriptionsQuery) (*dto.PaginatedTranscriptionsResponse, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedTranscriptionsResponse), args.Error(1)
}

func (m *MockTranscriptionService) UpdateText(ctx context.Context, userID, id, text string) (*dto.TranscriptionResponse, error) {
	args := m.Called(ctx, userID, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

func (m *MockTranscriptionService) Review(ctx context.Context, userID, id string, req *dto.ReviewTranscriptionRequest) (*dto.TranscriptionResponse, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

func (m *MockTranscriptionService) Refresh(ctx context.Context, userID, id string) (*dto.RefreshResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RefreshResponse), args.Error(1)
}

func (m *MockTranscriptionService) HandleCallback(ctx context.Context, transcriptID string) error {
	return m.Called(ctx, transcriptID).Error(0)
}

func (m *MockTranscriptionService) GetUtterances(ctx context.Context, userID, id string) (*dto.UtterancesResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UtterancesResponse), args.Error(1)
}

func (m *MockTranscriptionService) GetSentiment(ctx context.Context, userID, id string) (*dto.SentimentResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SentimentResponse), args.Error(1)
}

// MockCreditsService mocks services.CreditsService
type MockCreditsService struct {
	mock.Mock
}

func (m *MockCreditsService) GetCredits(ctx context.Context, userID string) (*dto.CreditsResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreditsResponse), args.Error(1)
}

// MockWebhookService mocks services.WebhookService
type MockWebhookService struct {
	mock.Mock
}

func (m *MockWebhookService) HandleWebhook(ctx context.Context, signature string, body []byte) (*dto.WebhookResponse, error) {
	args := m.Called(ctx, signature, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WebhookResponse), args.Error(1)
}

// MockVocabularyService mocks services.VocabularyService
type MockVocabularyService struct {
	mock.Mock
}

func (m *MockVocabularyService) ListVocabularies(ctx context.Context, userID string) ([]dto.VocabularyResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VocabularyResponse), args.Error(1)
}

func (m *MockVocabularyService) CreateVocabulary(ctx context.Context, userID string, req *dto.VocabularyRequest) (*dto.VocabularyResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VocabularyResponse), args.Error(1)
}

func (m *MockVocabularyService) UpdateVocabulary(ctx context.Context, userID, id string, req *dto.VocabularyRequest) (*dto.VocabularyResponse, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VocabularyResponse), args.Error(1)
}

func (m *MockVocabularyService) DeleteVocabulary(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

// MockIntegrationService mocks services.IntegrationService
type MockIntegrationService struct {
	mock.Mock
}

func (m *MockIntegrationService) ListIntegrations(ctx context.Context, userID string) ([]dto.IntegrationResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.IntegrationResponse), args.Error(1)
}

func (m *MockIntegrationService) Disconnect(ctx context.Context, userID, provider string) error {
	return m.Called(ctx, userID, provider).Error(0)
}

func (m *MockIntegrationService) ConnectDrive(ctx context.Context, userID string) (*dto.ConnectResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConnectResponse), args.Error(1)
}

func (m *MockIntegrationService) CompleteDrive(ctx context.Context, query dto.OAuthCallbackQuery) (*dto.IntegrationResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IntegrationResponse), args.Error(1)
}

func (m *MockIntegrationService) UpdateDriveSettings(ctx context.Context, userID string, req *dto.DriveSettingsRequest) (*dto.IntegrationResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IntegrationResponse), args.Error(1)
}

func (m *MockIntegrationService) SyncTranscription(ctx context.Context, userID, transcriptionID string) (*dto.DriveSyncResponse, error) {
	args := m.Called(ctx, userID, transcriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DriveSyncResponse), args.Error(1)
}

// MockAnalyticsService mocks services.AnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetAnalytics(ctx context.Context, userID string) (*model.UserAnalytics, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserAnalytics), args.Error(1)
}

func (m *MockAnalyticsService) GetQualityQueue(ctx context.Context, userID string, query dto.QualityQuery) (*dto.QualityResponse, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QualityResponse), args.Error(1)
}

// MockBlogService mocks services.BlogService
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) ListPosts(ctx context.Context) ([]blog.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]blog.Post), args.Error(1)
}

func (m *MockBlogService) GetPost(ctx context.Context, slug string) (*blog.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Post), args.Error(1)
}

// MockExportService mocks services.ExportService. When the first return
// value is a []byte it is written to the writer.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportTranscriptions(ctx context.Context, userID string, query dto.ExportQuery, writer io.Writer) error {
	args := m.Called(ctx, userID, query, writer)
	if data, ok := args.Get(0).([]byte); ok {
		if _, err := writer.Write(data); err != nil {
			return err
		}
	}
	return args.Error(1)
}

// MockStorageService mocks services.StorageService
type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) UploadFile(ctx context.Context, userID string, file multipart.File, header *multipart.FileHeader) (*dto.UploadResponse, error) {
	args := m.Called(ctx, userID, file, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UploadResponse), args.Error(1)
}
