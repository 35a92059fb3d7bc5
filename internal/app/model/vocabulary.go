package model

import "time"

// CustomVocabulary is a named list of terms boosted during transcription.
// At most one vocabulary per user has IsDefault set.
type CustomVocabulary struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Terms     []string  `json:"terms"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
