package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/v1/dto"
	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

// VocabularyServiceImpl implements VocabularyService
type VocabularyServiceImpl struct {
	store repository.VocabularyDAO
	now   func() time.Time
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(store repository.VocabularyDAO) *VocabularyServiceImpl {
	return &VocabularyServiceImpl{store: store, now: time.Now}
}

// ListVocabularies lists the user's vocabularies, default first
func (s *VocabularyServiceImpl) ListVocabularies(ctx context.Context, userID string) ([]dto.VocabularyResponse, error) {
	vs, err := s.store.ListVocabularies(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list vocabularies")
	}
	return dto.ToVocabularyResponses(vs), nil
}

// CreateVocabulary stores a new vocabulary. Creating a default clears
// the flag on the user's other vocabularies.
func (s *VocabularyServiceImpl) CreateVocabulary(ctx context.Context, userID string, req *dto.VocabularyRequest) (*dto.VocabularyResponse, error) {
	now := s.now().UTC()
	v := &model.CustomVocabulary{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      req.Name,
		Terms:     req.Terms,
		IsDefault: req.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateVocabulary(ctx, v); err != nil {
		return nil, errors.NewInternalError("Failed to create vocabulary")
	}
	resp := dto.ToVocabularyResponse(v)
	return &resp, nil
}

// UpdateVocabulary replaces a vocabulary owned by userID
func (s *VocabularyServiceImpl) UpdateVocabulary(ctx context.Context, userID, id string, req *dto.VocabularyRequest) (*dto.VocabularyResponse, error) {
	v, err := s.store.GetVocabulary(ctx, id, userID)
	if stderrors.Is(err, apperrors.ErrNotFound) {
		return nil, errors.NewNotFoundError("Vocabulary")
	}
	if err != nil {
		return nil, errors.NewInternalError("Failed to load vocabulary")
	}

	v.Name = req.Name
	v.Terms = req.Terms
	v.IsDefault = req.IsDefault
	v.UpdatedAt = s.now().UTC()
	if err := s.store.UpdateVocabulary(ctx, v); err != nil {
		if stderrors.Is(err, apperrors.ErrNotFound) {
			return nil, errors.NewNotFoundError("Vocabulary")
		}
		return nil, errors.NewInternalError("Failed to update vocabulary")
	}
	resp := dto.ToVocabularyResponse(v)
	return &resp, nil
}

// DeleteVocabulary removes a vocabulary owned by userID
func (s *VocabularyServiceImpl) DeleteVocabulary(ctx context.Context, userID, id string) error {
	err := s.store.DeleteVocabulary(ctx, id, userID)
	if stderrors.Is(err, apperrors.ErrNotFound) {
		return errors.NewNotFoundError("Vocabulary")
	}
	if err != nil {
		return errors.NewInternalError("Failed to delete vocabulary")
	}
	return nil
}
