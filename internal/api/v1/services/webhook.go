package services

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/app/billing"
	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/metrics"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

// CustomerLookup resolves payment provider customers
type CustomerLookup interface {
	GetCustomer(ctx context.Context, id string) (*billing.Customer, error)
}

// WebhookConfig configures signature verification
type WebhookConfig struct {
	Secret    string
	Tolerance time.Duration
}

// WebhookServiceImpl implements WebhookService
type WebhookServiceImpl struct {
	store     repository.CreditsDAO
	pricing   *billing.Pricing
	customers CustomerLookup
	config    WebhookConfig
	logger    *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewWebhookService creates a new webhook service. customers may be nil.
func NewWebhookService(store repository.CreditsDAO, pricing *billing.Pricing, customers CustomerLookup, config WebhookConfig, logger *zap.Logger, m *metrics.Metrics) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		store:     store,
		pricing:   pricing,
		customers: customers,
		config:    config,
		logger:    logger,
		metrics:   m,
		now:       time.Now,
	}
}

// HandleWebhook verifies and applies a payment provider event. Nothing is
// written unless the signature is valid.
func (s *WebhookServiceImpl) HandleWebhook(ctx context.Context, signature string, body []byte) (*dto.WebhookResponse, error) {
	if err := billing.VerifySignature(signature, body, s.config.Secret, s.now(), s.config.Tolerance); err != nil {
		s.metrics.WebhookEvent("unknown", "invalid_signature")
		s.logger.Warn("rejected webhook", zap.Error(err))
		return nil, errors.NewUnauthorizedError("Invalid signature")
	}

	var event billing.Event
	if err := json.Unmarshal(body, &event); err != nil || event.EventID == "" {
		s.metrics.WebhookEvent("unknown", "malformed")
		return nil, errors.NewBadRequestError("Malformed webhook payload")
	}

	if event.EventType != billing.EventTransactionCompleted {
		s.metrics.WebhookEvent(event.EventType, dto.WebhookIgnored)
		return &dto.WebhookResponse{Received: true, Status: dto.WebhookIgnored}, nil
	}

	var txn billing.Transaction
	if err := json.Unmarshal(event.Data, &txn); err != nil || txn.ID == "" {
		s.metrics.WebhookEvent(event.EventType, "malformed")
		return nil, errors.NewBadRequestError("Malformed transaction payload")
	}

	userID := s.resolveUser(ctx, &txn)
	if userID == "" {
		s.metrics.WebhookEvent(event.EventType, "missing_user")
		return nil, errors.NewBadRequestError("Transaction is missing custom_data.user_id")
	}

	credits := s.creditsFor(&txn)
	if credits <= 0 {
		s.metrics.WebhookEvent(event.EventType, "no_credits")
		return nil, errors.NewBadRequestError("Transaction does not map to any credit pack")
	}

	err := s.store.ApplyPurchase(ctx, model.WebhookEvent{
		EventID:     event.EventID,
		EventType:   event.EventType,
		ProcessedAt: s.now().UTC(),
	}, &model.CreditTransaction{
		ID:            uuid.New().String(),
		UserID:        userID,
		TransactionID: txn.ID,
		Credits:       credits,
		Amount:        txn.TotalMinor(),
		Currency:      txn.Currency,
		Status:        txn.Status,
	})
	if stderrors.Is(err, apperrors.ErrDuplicateEvent) {
		s.metrics.WebhookEvent(event.EventType, dto.WebhookDuplicate)
		s.logger.Info("duplicate webhook ignored", zap.String("event_id", event.EventID), zap.String("transaction_id", txn.ID))
		return &dto.WebhookResponse{Received: true, Status: dto.WebhookDuplicate}, nil
	}
	if err != nil {
		s.metrics.WebhookEvent(event.EventType, "failed")
		s.logger.Error("failed to apply purchase", zap.String("event_id", event.EventID), zap.Error(err))
		return nil, errors.NewInternalError("Failed to apply purchase")
	}

	s.metrics.WebhookEvent(event.EventType, dto.WebhookProcessed)
	s.metrics.CreditsPurchased(credits)
	s.logger.Info("credits purchased",
		zap.String("user_id", userID),
		zap.String("transaction_id", txn.ID),
		zap.Int("credits", credits))
	return &dto.WebhookResponse{Received: true, Status: dto.WebhookProcessed, Credits: credits}, nil
}

// resolveUser reads the user id from the transaction, then from the customer
func (s *WebhookServiceImpl) resolveUser(ctx context.Context, txn *billing.Transaction) string {
	if userID := txn.CustomString("user_id"); userID != "" {
		return userID
	}
	if s.customers == nil || txn.CustomerID == "" {
		return ""
	}
	customer, err := s.customers.GetCustomer(ctx, txn.CustomerID)
	if err != nil {
		s.logger.Warn("customer lookup failed", zap.String("customer_id", txn.CustomerID), zap.Error(err))
		return ""
	}
	if v, ok := customer.CustomData["user_id"].(string); ok {
		return v
	}
	return ""
}

// creditsFor prefers custom_data.credits, else sums credit packs by price
func (s *WebhookServiceImpl) creditsFor(txn *billing.Transaction) int {
	if credits, ok := txn.CustomInt("credits"); ok && credits > 0 {
		return credits
	}
	total := 0
	for _, item := range txn.Items {
		perUnit, ok := s.pricing.CreditsFor(item.Price.ID)
		if !ok {
			s.logger.Warn("unknown price id", zap.String("price_id", item.Price.ID))
			continue
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		total += perUnit * quantity
	}
	return total
}
