package model

import "time"

// TrialStatus tracks the free-trial lifecycle of a user
type TrialStatus string

const (
	TrialActive    TrialStatus = "active"
	TrialExhausted TrialStatus = "exhausted"
	TrialConverted TrialStatus = "converted"
)

// UserCredits is the per-user credit balance
type UserCredits struct {
	UserID           string      `json:"user_id"`
	CreditsBalance   int         `json:"credits_balance"`
	TrialStatus      TrialStatus `json:"trial_status"`
	TrialCreditsUsed int         `json:"trial_credits_used"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// CreditTransaction records a credit purchase from the payment provider
type CreditTransaction struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	TransactionID string    `json:"transaction_id"`
	Credits       int       `json:"credits"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreditUsage records credits consumed by a transcription. Refunds are
// written as negative usage.
type CreditUsage struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	TranscriptionID string    `json:"transcription_id,omitempty"`
	CreditsUsed     int       `json:"credits_used"`
	Duration        float64   `json:"duration"`
	CreatedAt       time.Time `json:"created_at"`
}

// WebhookEvent marks a payment provider event as processed
type WebhookEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	ProcessedAt time.Time `json:"processed_at"`
}
