package services

import (
	"context"

	"github.com/samber/lo"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/app/billing"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

const recentCreditRows = 20

// CreditsServiceImpl implements CreditsService
type CreditsServiceImpl struct {
	store   repository.CreditsDAO
	pricing *billing.Pricing
}

// NewCreditsService creates a new credits service
func NewCreditsService(store repository.CreditsDAO, pricing *billing.Pricing) *CreditsServiceImpl {
	return &CreditsServiceImpl{store: store, pricing: pricing}
}

// GetCredits returns the balance, seeding trial credits on first access
func (s *CreditsServiceImpl) GetCredits(ctx context.Context, userID string) (*dto.CreditsResponse, error) {
	credits, err := s.store.GetOrCreateCredits(ctx, userID, s.pricing.TrialCredits)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load credits")
	}

	transactions, err := s.store.ListTransactions(ctx, userID, recentCreditRows)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load credit transactions")
	}
	usage, err := s.store.ListUsage(ctx, userID, recentCreditRows)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load credit usage")
	}

	return &dto.CreditsResponse{
		Balance:          credits.CreditsBalance,
		TrialStatus:      credits.TrialStatus,
		TrialCreditsUsed: credits.TrialCreditsUsed,
		Transactions:     lo.Ternary(transactions == nil, []model.CreditTransaction{}, transactions),
		Usage:            lo.Ternary(usage == nil, []model.CreditUsage{}, usage),
		Packs: lo.Map(s.pricing.Packs, func(p billing.CreditPack, _ int) dto.CreditPackResponse {
			return dto.CreditPackResponse{PriceID: p.PriceID, Name: p.Name, Credits: p.Credits}
		}),
	}, nil
}
