package dto

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/app/model"
)

// MaxVocabularyTerms matches the provider's word boost limit
const MaxVocabularyTerms = 1000

// VocabularyRequest creates or replaces a custom vocabulary
type VocabularyRequest struct {
	Name      string   `json:"name" binding:"required,max=100"`
	Terms     []string `json:"terms" binding:"required,min=1"`
	IsDefault bool     `json:"is_default"`
}

// Validate trims and deduplicates terms
func (r *VocabularyRequest) Validate() error {
	validationErrors := make(map[string]string)

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		validationErrors["name"] = "name is required"
	}

	r.Terms = lo.Uniq(lo.Compact(lo.Map(r.Terms, func(term string, _ int) string {
		return strings.TrimSpace(term)
	})))
	switch {
	case len(r.Terms) == 0:
		validationErrors["terms"] = "at least one term is required"
	case len(r.Terms) > MaxVocabularyTerms:
		validationErrors["terms"] = "at most 1000 terms are allowed"
	case lo.SomeBy(r.Terms, func(term string) bool { return len(term) > 100 }):
		validationErrors["terms"] = "terms must be at most 100 characters"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid vocabulary", validationErrors)
	}
	return nil
}

// VocabularyResponse represents a custom vocabulary
type VocabularyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Terms     []string  `json:"terms"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToVocabularyResponse converts a model to response DTO
func ToVocabularyResponse(v *model.CustomVocabulary) VocabularyResponse {
	terms := v.Terms
	if terms == nil {
		terms = []string{}
	}
	return VocabularyResponse{
		ID:        v.ID,
		Name:      v.Name,
		Terms:     terms,
		IsDefault: v.IsDefault,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// ToVocabularyResponses converts a list of vocabularies
func ToVocabularyResponses(vs []model.CustomVocabulary) []VocabularyResponse {
	return lo.Map(vs, func(v model.CustomVocabulary, _ int) VocabularyResponse {
		return ToVocabularyResponse(&v)
	})
}
