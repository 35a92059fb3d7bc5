package testutil

import (
	"time"

	"yolo-transcript/internal/app/model"
)

// Fixed identifiers shared across tests
const (
	TestUserID       = "7b0c5f8e-3d1a-4c8e-9f0a-2b6d4e8a1c3f"
	TestOtherUserID  = "c2a9e1d4-5b7f-4a3c-8e6d-1f0b9a7c5e2d"
	TestTranscriptID = "tr_5c8f2a1e9d"
)

// FixedTime is the timestamp used by fixtures
var FixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// NewTranscription returns a processing transcription owned by TestUserID
func NewTranscription(id string) *model.Transcription {
	return &model.Transcription{
		ID:             id,
		UserID:         TestUserID,
		TranscriptID:   TestTranscriptID,
		Status:         model.StatusProcessing,
		FileName:       "standup-2025-03-14.m4a",
		FileSize:       4_812_330,
		FileType:       "audio/mp4",
		AudioURL:       "https://cdn.example.com/upload/standup-2025-03-14.m4a",
		Duration:       412,
		CreditsCharged: 2,
		CreatedAt:      FixedTime,
		UpdatedAt:      FixedTime,
	}
}

// NewCompletedTranscription returns a completed transcription with text
func NewCompletedTranscription(id string) *model.Transcription {
	t := NewTranscription(id)
	score := 0.93
	t.Status = model.StatusCompleted
	t.TranscriptionText = "Good morning everyone, let's go around the room."
	t.QualityScore = &score
	return t
}

// NewCredits returns a balance row for TestUserID
func NewCredits(balance int) *model.UserCredits {
	return &model.UserCredits{
		UserID:         TestUserID,
		CreditsBalance: balance,
		TrialStatus:    model.TrialActive,
		UpdatedAt:      FixedTime,
	}
}

// NewVocabulary returns a vocabulary owned by TestUserID
func NewVocabulary(id string, isDefault bool) *model.CustomVocabulary {
	return &model.CustomVocabulary{
		ID:        id,
		UserID:    TestUserID,
		Name:      "Engineering",
		Terms:     []string{"Kubernetes", "PostgreSQL", "gRPC"},
		IsDefault: isDefault,
		CreatedAt: FixedTime,
		UpdatedAt: FixedTime,
	}
}

// Float64 returns a pointer to v
func Float64(v float64) *float64 {
	return &v
}
