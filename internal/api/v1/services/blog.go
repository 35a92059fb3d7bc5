package services

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/app/blog"
	apperrors "yolo-transcript/internal/app/errors"
)

// PostSource loads rendered posts
type PostSource interface {
	ListPosts(ctx context.Context) ([]blog.Post, error)
	GetPost(ctx context.Context, slug string) (*blog.Post, error)
}

// BlogServiceImpl implements BlogService
type BlogServiceImpl struct {
	source PostSource
	logger *zap.Logger
}

// NewBlogService creates a new blog service. source may be nil when no
// CMS is configured.
func NewBlogService(source PostSource, logger *zap.Logger) *BlogServiceImpl {
	return &BlogServiceImpl{source: source, logger: logger}
}

// ListPosts returns the newest posts
func (s *BlogServiceImpl) ListPosts(ctx context.Context) ([]blog.Post, error) {
	if s.source == nil {
		return []blog.Post{}, nil
	}
	posts, err := s.source.ListPosts(ctx)
	if err != nil {
		s.logger.Warn("failed to load posts", zap.Error(err))
		return nil, errors.NewServiceUnavailableError("Blog is unavailable")
	}
	return posts, nil
}

// GetPost returns a single post
func (s *BlogServiceImpl) GetPost(ctx context.Context, slug string) (*blog.Post, error) {
	if s.source == nil {
		return nil, errors.NewNotFoundError("Post")
	}
	post, err := s.source.GetPost(ctx, slug)
	if stderrors.Is(err, apperrors.ErrNotFound) {
		return nil, errors.NewNotFoundError("Post")
	}
	if err != nil {
		s.logger.Warn("failed to load post", zap.String("slug", slug), zap.Error(err))
		return nil, errors.NewServiceUnavailableError("Blog is unavailable")
	}
	return post, nil
}
