package repository

import (
	"context"
	"time"

	"yolo-transcript/internal/app/model"
)

// TranscriptionDAO persists transcription jobs
type TranscriptionDAO interface {
	CreateTranscription(ctx context.Context, t *model.Transcription) error
	GetTranscription(ctx context.Context, id string) (*model.Transcription, error)
	GetTranscriptionForUser(ctx context.Context, id, userID string) (*model.Transcription, error)
	GetTranscriptionByTranscriptID(ctx context.Context, transcriptID string) (*model.Transcription, error)
	ListTranscriptions(ctx context.Context, filter TranscriptionFilter) ([]model.Transcription, int, error)
	ListProcessing(ctx context.Context, limit int) ([]model.Transcription, error)
	ListForQualityReview(ctx context.Context, userID string, threshold float64, limit int) ([]model.Transcription, error)

	// UpdateFromProvider copies provider state into a row that is still
	// processing. It reports false when the row was already terminal.
	UpdateFromProvider(ctx context.Context, id string, update model.TranscriptionUpdate) (bool, error)
	UpdateText(ctx context.Context, id, userID, text string) error
	UpdateReview(ctx context.Context, id, userID string, reviewed bool, qualityScore *float64) error
	UpdateMetadata(ctx context.Context, id string, metadata model.TranscriptionMetadata) error

	// DeleteDuplicates removes every row sharing transcriptID except keepID.
	DeleteDuplicates(ctx context.Context, transcriptID, keepID string) (int64, error)
	GetAnalytics(ctx context.Context, userID string, since time.Time) (*model.UserAnalytics, error)
}

// CreditsDAO persists balances and the purchase/usage logs
type CreditsDAO interface {
	GetOrCreateCredits(ctx context.Context, userID string, trialCredits int) (*model.UserCredits, error)
	// DebitCredits atomically subtracts credits, failing with
	// errors.ErrInsufficientCredits when the balance is too low.
	DebitCredits(ctx context.Context, userID string, credits int) (*model.UserCredits, error)
	RefundCredits(ctx context.Context, userID string, credits int) error
	RecordUsage(ctx context.Context, usage *model.CreditUsage) error
	ListTransactions(ctx context.Context, userID string, limit int) ([]model.CreditTransaction, error)
	ListUsage(ctx context.Context, userID string, limit int) ([]model.CreditUsage, error)
	// ApplyPurchase records the webhook event and the transaction and credits
	// the user in a single database transaction. A previously seen event id
	// returns errors.ErrDuplicateEvent.
	ApplyPurchase(ctx context.Context, event model.WebhookEvent, tx *model.CreditTransaction) error
}

// IntegrationDAO persists connected cloud-storage accounts
type IntegrationDAO interface {
	UpsertIntegration(ctx context.Context, integration *model.Integration) error
	GetIntegration(ctx context.Context, userID, provider string) (*model.Integration, error)
	ListIntegrations(ctx context.Context, userID string) ([]model.Integration, error)
	UpdateIntegrationSettings(ctx context.Context, id string, settings model.IntegrationSettings) error
	SetIntegrationStatus(ctx context.Context, id string, status model.IntegrationStatus) error
}

// VocabularyDAO persists custom vocabularies
type VocabularyDAO interface {
	CreateVocabulary(ctx context.Context, v *model.CustomVocabulary) error
	UpdateVocabulary(ctx context.Context, v *model.CustomVocabulary) error
	DeleteVocabulary(ctx context.Context, id, userID string) error
	GetVocabulary(ctx context.Context, id, userID string) (*model.CustomVocabulary, error)
	GetDefaultVocabulary(ctx context.Context, userID string) (*model.CustomVocabulary, error)
	ListVocabularies(ctx context.Context, userID string) ([]model.CustomVocabulary, error)
}

// Store groups every DAO implemented by a single database handle
type Store interface {
	TranscriptionDAO
	CreditsDAO
	IntegrationDAO
	VocabularyDAO
	Close() error
}

// TranscriptionFilter narrows ListTranscriptions
type TranscriptionFilter struct {
	UserID string
	Status model.TranscriptionStatus
	Limit  int
	Offset int
}
