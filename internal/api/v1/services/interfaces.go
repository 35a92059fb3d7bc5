package services

import (
	"context"
	"io"
	"mime/multipart"

	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/app/api/assemblyai"
	"yolo-transcript/internal/app/blog"
	"yolo-transcript/internal/app/model"
)

// SpeechToText is the provider client surface the services use
type SpeechToText interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
	CreateTranscript(ctx context.Context, params assemblyai.TranscriptParams) (*assemblyai.Transcript, error)
	GetTranscript(ctx context.Context, id string) (*assemblyai.Transcript, error)
	GetUtterances(ctx context.Context, id string) ([]assemblyai.Utterance, error)
	GetSentiment(ctx context.Context, id string) ([]assemblyai.SentimentResult, error)
}

// StatusChecker schedules and runs provider status checks
type StatusChecker interface {
	Schedule(id, transcriptID string)
	Check(ctx context.Context, id, transcriptID string) (model.TranscriptionStatus, error)
}

// TranscriptionService defines the interface for transcription operations
type TranscriptionService interface {
	CreateTranscription(ctx context.Context, userID string, req *dto.CreateTranscriptionRequest) (*dto.CreateTranscriptionResponse, error)
	GetTranscription(ctx context.Context, userID, id string) (*dto.TranscriptionResponse, error)
	ListTranscriptions(ctx context.Context, userID string, query dto.ListTranscriptionsQuery) (*dto.PaginatedTranscriptionsResponse, error)
	UpdateText(ctx context.Context, userID, id, text string) (*dto.TranscriptionResponse, error)
	Review(ctx context.Context, userID, id string, req *dto.ReviewTranscriptionRequest) (*dto.TranscriptionResponse, error)
	Refresh(ctx context.Context, userID, id string) (*dto.RefreshResponse, error)
	HandleCallback(ctx context.Context, transcriptID string) error
	GetUtterances(ctx context.Context, userID, id string) (*dto.UtterancesResponse, error)
	GetSentiment(ctx context.Context, userID, id string) (*dto.SentimentResponse, error)
}

// CreditsService defines the interface for balance operations
type CreditsService interface {
	GetCredits(ctx context.Context, userID string) (*dto.CreditsResponse, error)
}

// WebhookService defines the interface for payment webhooks
type WebhookService interface {
	HandleWebhook(ctx context.Context, signature string, body []byte) (*dto.WebhookResponse, error)
}

// VocabularyService defines the interface for custom vocabularies
type VocabularyService interface {
	ListVocabularies(ctx context.Context, userID string) ([]dto.VocabularyResponse, error)
	CreateVocabulary(ctx context.Context, userID string, req *dto.VocabularyRequest) (*dto.VocabularyResponse, error)
	UpdateVocabulary(ctx context.Context, userID, id string, req *dto.VocabularyRequest) (*dto.VocabularyResponse, error)
	DeleteVocabulary(ctx context.Context, userID, id string) error
}

// IntegrationService defines the interface for connected accounts
type IntegrationService interface {
	ListIntegrations(ctx context.Context, userID string) ([]dto.IntegrationResponse, error)
	Disconnect(ctx context.Context, userID, provider string) error
	ConnectDrive(ctx context.Context, userID string) (*dto.ConnectResponse, error)
	CompleteDrive(ctx context.Context, query dto.OAuthCallbackQuery) (*dto.IntegrationResponse, error)
	UpdateDriveSettings(ctx context.Context, userID string, req *dto.DriveSettingsRequest) (*dto.IntegrationResponse, error)
	SyncTranscription(ctx context.Context, userID, transcriptionID string) (*dto.DriveSyncResponse, error)
}

// AnalyticsService defines the interface for usage statistics
type AnalyticsService interface {
	GetAnalytics(ctx context.Context, userID string) (*model.UserAnalytics, error)
	GetQualityQueue(ctx context.Context, userID string, query dto.QualityQuery) (*dto.QualityResponse, error)
}

// BlogService defines the interface for CMS posts
type BlogService interface {
	ListPosts(ctx context.Context) ([]blog.Post, error)
	GetPost(ctx context.Context, slug string) (*blog.Post, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	ExportTranscriptions(ctx context.Context, userID string, query dto.ExportQuery, writer io.Writer) error
}

// StorageService defines the interface for media uploads
type StorageService interface {
	UploadFile(ctx context.Context, userID string, file multipart.File, header *multipart.FileHeader) (*dto.UploadResponse, error)
}
