package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/services"
)

// BlogHandler serves CMS posts
type BlogHandler struct {
	service services.BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(service services.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /api/blog
//
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Success 200 {object} object{posts=[]blog.Post}
// @Failure 503 {object} errors.APIError "CMS unavailable"
// @Router /blog [get]
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Get handles GET /api/blog/:slug
//
// @Summary Get a blog post
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} blog.Post
// @Failure 404 {object} errors.APIError "Post not found"
// @Router /blog/{slug} [get]
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.service.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, post)
}
