package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/api/v1/services"
)

// VocabularyHandler manages custom vocabularies
type VocabularyHandler struct {
	service services.VocabularyService
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(service services.VocabularyService) *VocabularyHandler {
	return &VocabularyHandler{service: service}
}

// List handles GET /api/vocabularies
//
// @Summary List vocabularies
// @Tags vocabularies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{vocabularies=[]dto.VocabularyResponse}
// @Router /vocabularies [get]
func (h *VocabularyHandler) List(c *gin.Context) {
	response, err := h.service.ListVocabularies(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vocabularies": response})
}

// Create handles POST /api/vocabularies
//
// @Summary Create a vocabulary
// @Description Setting is_default clears the flag on the caller's other vocabularies
// @Tags vocabularies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vocabulary body dto.VocabularyRequest true "Vocabulary"
// @Success 201 {object} dto.VocabularyResponse
// @Failure 400 {object} errors.APIError "Malformed request body"
// @Failure 422 {object} errors.APIError "Validation error"
// @Router /vocabularies [post]
func (h *VocabularyHandler) Create(c *gin.Context) {
	var req dto.VocabularyRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateVocabulary(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Update handles PUT /api/vocabularies/:id
//
// @Summary Update a vocabulary
// @Tags vocabularies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vocabulary ID"
// @Param vocabulary body dto.VocabularyRequest true "Vocabulary"
// @Success 200 {object} dto.VocabularyResponse
// @Failure 400 {object} errors.APIError "Malformed request body"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 404 {object} errors.APIError "Vocabulary not found"
// @Router /vocabularies/{id} [put]
func (h *VocabularyHandler) Update(c *gin.Context) {
	var req dto.VocabularyRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateVocabulary(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/vocabularies/:id
//
// @Summary Delete a vocabulary
// @Tags vocabularies
// @Security BearerAuth
// @Param id path string true "Vocabulary ID"
// @Success 204
// @Failure 404 {object} errors.APIError "Vocabulary not found"
// @Router /vocabularies/{id} [delete]
func (h *VocabularyHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteVocabulary(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
