package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/app/api/assemblyai"
	"yolo-transcript/internal/app/billing"
	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/metrics"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

// TranscriptionConfig configures job submission
type TranscriptionConfig struct {
	TrialCredits int
	// CallbackURL is the public URL of the provider callback route. When
	// set, jobs ask the provider to notify it on completion.
	CallbackURL   string
	CallbackToken string
}

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	store   repository.Store
	stt     SpeechToText
	checker StatusChecker
	config  TranscriptionConfig
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	store repository.Store,
	stt SpeechToText,
	checker StatusChecker,
	config TranscriptionConfig,
	logger *zap.Logger,
	m *metrics.Metrics,
) *TranscriptionServiceImpl {
	return &TranscriptionServiceImpl{
		store:   store,
		stt:     stt,
		checker: checker,
		config:  config,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// CreateTranscription debits credits and submits a job to the provider.
// Credits are refunded when the job cannot be started.
func (s *TranscriptionServiceImpl) CreateTranscription(ctx context.Context, userID string, req *dto.CreateTranscriptionRequest) (*dto.CreateTranscriptionResponse, error) {
	credits := billing.CalculateCredits(req.DurationSeconds)

	vocabulary, err := s.resolveVocabulary(ctx, userID, req.VocabularyID)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.GetOrCreateCredits(ctx, userID, s.config.TrialCredits); err != nil {
		return nil, errors.NewInternalError("Failed to load credits")
	}
	balance, err := s.store.DebitCredits(ctx, userID, credits)
	if stderrors.Is(err, apperrors.ErrInsufficientCredits) {
		apiErr := errors.NewPaymentRequiredError("Insufficient credits")
		apiErr.Details = map[string]string{"required": fmt.Sprint(credits)}
		return nil, apiErr
	}
	if err != nil {
		return nil, errors.NewInternalError("Failed to debit credits")
	}
	s.metrics.CreditsDebited(credits)

	metadata := model.TranscriptionMetadata{
		SpeakerLabels:     req.SpeakerLabels,
		SentimentAnalysis: req.SentimentAnalysis,
		SyncToDrive:       req.SyncToDrive,
	}
	params := assemblyai.TranscriptParams{
		AudioURL:          req.AudioURL,
		SpeakerLabels:     req.SpeakerLabels,
		SentimentAnalysis: req.SentimentAnalysis,
		WebhookURL:        s.callbackURL(),
	}
	if vocabulary != nil {
		metadata.VocabularyID = vocabulary.ID
		metadata.WordBoost = vocabulary.Terms
		params.WordBoost = vocabulary.Terms
	}

	start := time.Now()
	transcript, err := s.stt.CreateTranscript(ctx, params)
	s.metrics.ObserveProvider("assemblyai", "create_transcript", start)
	if err != nil {
		s.logger.Error("failed to start transcription",
			zap.String("user_id", userID),
			zap.String("file_name", req.FileName),
			zap.Error(err))
		s.refund(ctx, userID, "", credits, req.DurationSeconds)
		return nil, errors.NewInternalError("Failed to start transcription")
	}

	now := s.now().UTC()
	transcription := &model.Transcription{
		ID:             uuid.New().String(),
		UserID:         userID,
		TranscriptID:   transcript.ID,
		Status:         model.StatusProcessing,
		FileName:       req.FileName,
		FileSize:       req.FileSize,
		FileType:       req.FileType,
		AudioURL:       req.AudioURL,
		Duration:       req.DurationSeconds,
		Metadata:       metadata,
		CreditsCharged: credits,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.CreateTranscription(ctx, transcription); err != nil {
		s.logger.Error("failed to record transcription",
			zap.String("user_id", userID),
			zap.String("transcript_id", transcript.ID),
			zap.Error(err))
		s.refund(ctx, userID, "", credits, req.DurationSeconds)
		return nil, errors.NewInternalError("Failed to create transcription record")
	}

	if err := s.store.RecordUsage(ctx, &model.CreditUsage{
		ID:              uuid.New().String(),
		UserID:          userID,
		TranscriptionID: transcription.ID,
		CreditsUsed:     credits,
		Duration:        req.DurationSeconds,
		CreatedAt:       now,
	}); err != nil {
		s.logger.Warn("failed to record credit usage", zap.String("transcription_id", transcription.ID), zap.Error(err))
	}

	s.checker.Schedule(transcription.ID, transcription.TranscriptID)
	s.logger.Info("transcription submitted",
		zap.String("transcription_id", transcription.ID),
		zap.String("transcript_id", transcription.TranscriptID),
		zap.Int("credits", credits))

	return &dto.CreateTranscriptionResponse{
		Transcription:    dto.ToTranscriptionResponse(transcription),
		CreditsCharged:   credits,
		CreditsRemaining: balance.CreditsBalance,
	}, nil
}

// resolveVocabulary returns the requested vocabulary, else the user's
// default, else nil
func (s *TranscriptionServiceImpl) resolveVocabulary(ctx context.Context, userID, vocabularyID string) (*model.CustomVocabulary, error) {
	if vocabularyID != "" {
		v, err := s.store.GetVocabulary(ctx, vocabularyID, userID)
		if stderrors.Is(err, apperrors.ErrNotFound) {
			return nil, errors.NewNotFoundError("Vocabulary")
		}
		if err != nil {
			return nil, errors.NewInternalError("Failed to load vocabulary")
		}
		return v, nil
	}

	v, err := s.store.GetDefaultVocabulary(ctx, userID)
	if stderrors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewInternalError("Failed to load vocabulary")
	}
	return v, nil
}

// refund credits back a failed submission and logs negative usage
func (s *TranscriptionServiceImpl) refund(ctx context.Context, userID, transcriptionID string, credits int, duration float64) {
	if err := s.store.RefundCredits(ctx, userID, credits); err != nil {
		s.logger.Error("failed to refund credits",
			zap.String("user_id", userID),
			zap.Int("credits", credits),
			zap.Error(err))
		return
	}
	s.metrics.CreditsRefunded(credits)

	if err := s.store.RecordUsage(ctx, &model.CreditUsage{
		ID:              uuid.New().String(),
		UserID:          userID,
		TranscriptionID: transcriptionID,
		CreditsUsed:     -credits,
		Duration:        duration,
		CreatedAt:       s.now().UTC(),
	}); err != nil {
		s.logger.Warn("failed to record refund", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *TranscriptionServiceImpl) callbackURL() string {
	if s.config.CallbackURL == "" {
		return ""
	}
	if s.config.CallbackToken == "" {
		return s.config.CallbackURL
	}
	sep := "?"
	if strings.Contains(s.config.CallbackURL, "?") {
		sep = "&"
	}
	return s.config.CallbackURL + sep + "token=" + url.QueryEscape(s.config.CallbackToken)
}

// GetTranscription retrieves a transcription owned by userID
func (s *TranscriptionServiceImpl) GetTranscription(ctx context.Context, userID, id string) (*dto.TranscriptionResponse, error) {
	t, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToTranscriptionResponse(t)
	return &resp, nil
}

func (s *TranscriptionServiceImpl) load(ctx context.Context, userID, id string) (*model.Transcription, error) {
	t, err := s.store.GetTranscriptionForUser(ctx, id, userID)
	if stderrors.Is(err, apperrors.ErrNotFound) {
		return nil, errors.NewNotFoundError("Transcription")
	}
	if err != nil {
		return nil, errors.NewInternalError("Failed to retrieve transcription")
	}
	return t, nil
}

// ListTranscriptions lists transcriptions with pagination
func (s *TranscriptionServiceImpl) ListTranscriptions(ctx context.Context, userID string, query dto.ListTranscriptionsQuery) (*dto.PaginatedTranscriptionsResponse, error) {
	rows, total, err := s.store.ListTranscriptions(ctx, repository.TranscriptionFilter{
		UserID: userID,
		Status: model.TranscriptionStatus(query.Status),
		Limit:  query.Limit,
		Offset: query.Offset(),
	})
	if err != nil {
		return nil, errors.NewInternalError("Failed to list transcriptions")
	}

	return &dto.PaginatedTranscriptionsResponse{
		Transcriptions: dto.ToTranscriptionResponses(rows),
		Pagination:     dto.NewPagination(query.Page, query.Limit, total),
	}, nil
}

// UpdateText replaces the transcript text of a finished transcription
func (s *TranscriptionServiceImpl) UpdateText(ctx context.Context, userID, id, text string) (*dto.TranscriptionResponse, error) {
	t, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if t.Status != model.StatusCompleted {
		return nil, errors.NewConflictError("Only completed transcriptions can be edited")
	}

	if err := s.store.UpdateText(ctx, id, userID, text); err != nil {
		if stderrors.Is(err, apperrors.ErrNotFound) {
			return nil, errors.NewNotFoundError("Transcription")
		}
		return nil, errors.NewInternalError("Failed to update transcription")
	}
	t.TranscriptionText = text
	t.UpdatedAt = s.now().UTC()
	resp := dto.ToTranscriptionResponse(t)
	return &resp, nil
}

// Review records a human review and optional quality score
func (s *TranscriptionServiceImpl) Review(ctx context.Context, userID, id string, req *dto.ReviewTranscriptionRequest) (*dto.TranscriptionResponse, error) {
	if err := s.store.UpdateReview(ctx, id, userID, *req.Reviewed, req.QualityScore); err != nil {
		if stderrors.Is(err, apperrors.ErrNotFound) {
			return nil, errors.NewNotFoundError("Transcription")
		}
		return nil, errors.NewInternalError("Failed to review transcription")
	}
	return s.GetTranscription(ctx, userID, id)
}

// Refresh runs an immediate provider status check
func (s *TranscriptionServiceImpl) Refresh(ctx context.Context, userID, id string) (*dto.RefreshResponse, error) {
	t, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if t.IsTerminal() {
		return &dto.RefreshResponse{Status: t.Status, Transcription: dto.ToTranscriptionResponse(t)}, nil
	}

	status, err := s.checker.Check(ctx, t.ID, t.TranscriptID)
	if err != nil {
		s.logger.Warn("manual status check failed", zap.String("transcription_id", id), zap.Error(err))
		return nil, errors.NewServiceUnavailableError("Transcription provider unavailable")
	}

	t, err = s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Status: status, Transcription: dto.ToTranscriptionResponse(t)}, nil
}

// HandleCallback runs a status check for a job the provider reports finished
func (s *TranscriptionServiceImpl) HandleCallback(ctx context.Context, transcriptID string) error {
	t, err := s.store.GetTranscriptionByTranscriptID(ctx, transcriptID)
	if stderrors.Is(err, apperrors.ErrNotFound) {
		return errors.NewNotFoundError("Transcription")
	}
	if err != nil {
		return errors.NewInternalError("Failed to retrieve transcription")
	}
	if t.IsTerminal() {
		return nil
	}
	if _, err := s.checker.Check(ctx, t.ID, transcriptID); err != nil {
		s.logger.Warn("callback status check failed", zap.String("transcript_id", transcriptID), zap.Error(err))
		return errors.NewServiceUnavailableError("Transcription provider unavailable")
	}
	return nil
}

// GetUtterances proxies the speaker turns of a transcription
func (s *TranscriptionServiceImpl) GetUtterances(ctx context.Context, userID, id string) (*dto.UtterancesResponse, error) {
	t, err := s.loadCompleted(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	utterances, err := s.stt.GetUtterances(ctx, t.TranscriptID)
	if err != nil {
		return nil, providerError(err)
	}
	resp := dto.NewUtterancesResponse(utterances)
	return &resp, nil
}

// GetSentiment proxies the sentence sentiments of a transcription
func (s *TranscriptionServiceImpl) GetSentiment(ctx context.Context, userID, id string) (*dto.SentimentResponse, error) {
	t, err := s.loadCompleted(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !t.Metadata.SentimentAnalysis {
		return nil, errors.NewBadRequestError("Sentiment analysis was not requested for this transcription")
	}
	results, err := s.stt.GetSentiment(ctx, t.TranscriptID)
	if err != nil {
		return nil, providerError(err)
	}
	resp := dto.NewSentimentResponse(results)
	return &resp, nil
}

func (s *TranscriptionServiceImpl) loadCompleted(ctx context.Context, userID, id string) (*model.Transcription, error) {
	t, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if t.Status != model.StatusCompleted {
		return nil, errors.NewConflictError("Transcription is not completed")
	}
	return t, nil
}

func providerError(err error) *errors.APIError {
	var apiErr *assemblyai.APIError
	if stderrors.As(err, &apiErr) && apiErr.StatusCode == 404 {
		return errors.NewNotFoundError("Provider transcript")
	}
	return errors.NewServiceUnavailableError("Transcription provider unavailable")
}
