package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// TranscriptionStatus mirrors the STT provider job status
type TranscriptionStatus string

const (
	StatusProcessing TranscriptionStatus = "processing"
	StatusCompleted  TranscriptionStatus = "completed"
	StatusError      TranscriptionStatus = "error"
)

// Valid reports whether s is one of the known statuses
func (s TranscriptionStatus) Valid() bool {
	switch s {
	case StatusProcessing, StatusCompleted, StatusError:
		return true
	}
	return false
}

// Transcription is a single transcription job owned by a user.
// Rows are created when a job is submitted and updated by the poller or
// the provider callback. They are never deleted by the service.
type Transcription struct {
	ID                string                `json:"id"`
	UserID            string                `json:"user_id"`
	TranscriptID      string                `json:"transcript_id"`
	Status            TranscriptionStatus   `json:"status"`
	FileName          string                `json:"file_name"`
	FileSize          int64                 `json:"file_size"`
	FileType          string                `json:"file_type"`
	AudioURL          string                `json:"audio_url,omitempty"`
	TranscriptionText string                `json:"transcription_text"`
	Duration          float64               `json:"duration"`
	QualityScore      *float64              `json:"quality_score,omitempty"`
	Reviewed          bool                  `json:"reviewed"`
	ErrorMessage      string                `json:"error_message,omitempty"`
	Metadata          TranscriptionMetadata `json:"metadata"`
	CreditsCharged    int                   `json:"credits_charged"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// IsTerminal reports whether the provider will not change the job any more
func (t *Transcription) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusError
}

// TranscriptionMetadata is stored as JSONB next to the transcription row
type TranscriptionMetadata struct {
	SpeakerLabels     bool     `json:"speaker_labels"`
	SentimentAnalysis bool     `json:"sentiment_analysis"`
	VocabularyID      string   `json:"vocabulary_id,omitempty"`
	WordBoost         []string `json:"word_boost,omitempty"`
	SyncToDrive       bool     `json:"sync_to_drive"`
	DriveFileID       string   `json:"drive_file_id,omitempty"`
	DriveSyncError    string   `json:"drive_sync_error,omitempty"`
}

// Value implements driver.Valuer
func (m TranscriptionMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *TranscriptionMetadata) Scan(src interface{}) error {
	return scanJSON(src, m)
}

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported JSON column type")
	}
}

// TranscriptionUpdate carries the provider-owned fields copied into the row
type TranscriptionUpdate struct {
	Status            TranscriptionStatus
	TranscriptionText string
	Duration          float64
	QualityScore      *float64
	ErrorMessage      string
}
