package dto

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/app/api/assemblyai"
	"yolo-transcript/internal/app/model"
)

// MaxDurationSeconds caps a single job at twelve hours of audio
const MaxDurationSeconds = 12 * 60 * 60

// CreateTranscriptionRequest represents the request to start a transcription
type CreateTranscriptionRequest struct {
	AudioURL          string  `json:"audio_url" binding:"required,url"`
	FileName          string  `json:"file_name" binding:"required,max=255"`
	FileSize          int64   `json:"file_size" binding:"gte=0"`
	FileType          string  `json:"file_type" binding:"max=100"`
	DurationSeconds   float64 `json:"duration_seconds" binding:"gte=0"`
	SpeakerLabels     bool    `json:"speaker_labels"`
	VocabularyID      string  `json:"vocabulary_id,omitempty" binding:"omitempty,uuid"`
	SentimentAnalysis bool    `json:"sentiment_analysis"`
	SyncToDrive       bool    `json:"sync_to_drive"`
}

// Validate performs domain-specific validation
func (r *CreateTranscriptionRequest) Validate() error {
	validationErrors := make(map[string]string)

	if strings.TrimSpace(r.FileName) == "" {
		validationErrors["file_name"] = "file name is required"
	}
	if r.FileType != "" && !strings.HasPrefix(r.FileType, "audio/") && !strings.HasPrefix(r.FileType, "video/") {
		validationErrors["file_type"] = "only audio and video files can be transcribed"
	}
	if r.DurationSeconds > MaxDurationSeconds {
		validationErrors["duration_seconds"] = "audio longer than 12 hours is not supported"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid transcription request", validationErrors)
	}
	return nil
}

// CreateTranscriptionResponse is returned once a job has been submitted
type CreateTranscriptionResponse struct {
	Transcription    TranscriptionResponse `json:"transcription"`
	CreditsCharged   int                   `json:"credits_charged"`
	CreditsRemaining int                   `json:"credits_remaining"`
}

// TranscriptionResponse represents a transcription in API responses
type TranscriptionResponse struct {
	ID                string                    `json:"id"`
	TranscriptID      string                    `json:"transcript_id"`
	Status            model.TranscriptionStatus `json:"status"`
	FileName          string                    `json:"file_name"`
	FileSize          int64                     `json:"file_size"`
	FileType          string                    `json:"file_type,omitempty"`
	AudioURL          string                    `json:"audio_url,omitempty"`
	TranscriptionText string                    `json:"transcription_text,omitempty"`
	Duration          float64                   `json:"duration"`
	QualityScore      *float64                  `json:"quality_score,omitempty"`
	Reviewed          bool                      `json:"reviewed"`
	ErrorMessage      string                    `json:"error_message,omitempty"`
	CreditsCharged    int                       `json:"credits_charged"`
	SpeakerLabels     bool                      `json:"speaker_labels"`
	SentimentAnalysis bool                      `json:"sentiment_analysis"`
	VocabularyID      string                    `json:"vocabulary_id,omitempty"`
	DriveFileID       string                    `json:"drive_file_id,omitempty"`
	DriveSyncError    string                    `json:"drive_sync_error,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

// ToTranscriptionResponse converts a model to response DTO
func ToTranscriptionResponse(t *model.Transcription) TranscriptionResponse {
	return TranscriptionResponse{
		ID:                t.ID,
		TranscriptID:      t.TranscriptID,
		Status:            t.Status,
		FileName:          t.FileName,
		FileSize:          t.FileSize,
		FileType:          t.FileType,
		AudioURL:          t.AudioURL,
		TranscriptionText: t.TranscriptionText,
		Duration:          t.Duration,
		QualityScore:      t.QualityScore,
		Reviewed:          t.Reviewed,
		ErrorMessage:      t.ErrorMessage,
		CreditsCharged:    t.CreditsCharged,
		SpeakerLabels:     t.Metadata.SpeakerLabels,
		SentimentAnalysis: t.Metadata.SentimentAnalysis,
		VocabularyID:      t.Metadata.VocabularyID,
		DriveFileID:       t.Metadata.DriveFileID,
		DriveSyncError:    t.Metadata.DriveSyncError,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToTranscriptionResponses converts a page of rows
func ToTranscriptionResponses(rows []model.Transcription) []TranscriptionResponse {
	return lo.Map(rows, func(t model.Transcription, _ int) TranscriptionResponse {
		return ToTranscriptionResponse(&t)
	})
}

// ListTranscriptionsQuery represents query parameters for listing transcriptions
type ListTranscriptionsQuery struct {
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=processing completed error"`
}

// Offset returns the row offset of the requested page
func (q ListTranscriptionsQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PaginatedTranscriptionsResponse represents a paginated list of transcriptions
type PaginatedTranscriptionsResponse struct {
	Transcriptions []TranscriptionResponse `json:"transcriptions"`
	Pagination     PaginationResponse      `json:"pagination"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPagination computes pagination metadata
func NewPagination(page, limit, total int) PaginationResponse {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// UpdateTranscriptionRequest edits the transcript text
type UpdateTranscriptionRequest struct {
	TranscriptionText *string `json:"transcription_text" binding:"required"`
}

// ReviewTranscriptionRequest marks a transcript as reviewed
type ReviewTranscriptionRequest struct {
	Reviewed     *bool    `json:"reviewed" binding:"required"`
	QualityScore *float64 `json:"quality_score,omitempty" binding:"omitempty,gte=0,lte=1"`
}

// RefreshResponse reports the result of a manual status check
type RefreshResponse struct {
	Status        model.TranscriptionStatus `json:"status"`
	Transcription TranscriptionResponse     `json:"transcription"`
}

// UtterancesResponse lists speaker turns
type UtterancesResponse struct {
	Utterances []assemblyai.Utterance `json:"utterances"`
	Speakers   []string               `json:"speakers"`
}

// NewUtterancesResponse builds the response with the distinct speakers
func NewUtterancesResponse(utterances []assemblyai.Utterance) UtterancesResponse {
	if utterances == nil {
		utterances = []assemblyai.Utterance{}
	}
	return UtterancesResponse{
		Utterances: utterances,
		Speakers: lo.Uniq(lo.Map(utterances, func(u assemblyai.Utterance, _ int) string {
			return u.Speaker
		})),
	}
}

// SentimentResponse lists sentence sentiments with totals
type SentimentResponse struct {
	Results []assemblyai.SentimentResult `json:"results"`
	Summary map[string]int               `json:"summary"`
}

// NewSentimentResponse counts results per sentiment
func NewSentimentResponse(results []assemblyai.SentimentResult) SentimentResponse {
	if results == nil {
		results = []assemblyai.SentimentResult{}
	}
	summary := map[string]int{"POSITIVE": 0, "NEUTRAL": 0, "NEGATIVE": 0}
	for sentiment, n := range lo.CountValuesBy(results, func(r assemblyai.SentimentResult) string {
		return strings.ToUpper(r.Sentiment)
	}) {
		summary[sentiment] = n
	}
	return SentimentResponse{Results: results, Summary: summary}
}

// CallbackRequest is the STT provider's completion notification
type CallbackRequest struct {
	TranscriptID string `json:"transcript_id" binding:"required"`
	Status       string `json:"status"`
}
