package dto

import (
	"yolo-transcript/internal/app/model"
)

// CreditsResponse is the balance overview of the current user
type CreditsResponse struct {
	Balance          int                       `json:"credits_balance"`
	TrialStatus      model.TrialStatus         `json:"trial_status"`
	TrialCreditsUsed int                       `json:"trial_credits_used"`
	Transactions     []model.CreditTransaction `json:"transactions"`
	Usage            []model.CreditUsage       `json:"usage"`
	Packs            []CreditPackResponse      `json:"packs,omitempty"`
}

// CreditPackResponse is a purchasable credit pack
type CreditPackResponse struct {
	PriceID string `json:"price_id"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}

// WebhookResponse acknowledges a payment webhook delivery
type WebhookResponse struct {
	Received bool   `json:"received"`
	Status   string `json:"status"`
	Credits  int    `json:"credits,omitempty"`
}

// Webhook processing outcomes
const (
	WebhookProcessed = "processed"
	WebhookDuplicate = "duplicate"
	WebhookIgnored   = "ignored"
)
