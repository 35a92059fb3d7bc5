package blog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "yolo-transcript/internal/app/errors"
)

const (
	postProjection = `{title, "slug": slug.current, publishedAt, "author": author->name, "mainImage": mainImage.asset->url, "categories": categories[]->title, body}`
	listQuery      = `*[_type == "post" && defined(slug.current)] | order(publishedAt desc)[0...50]` + postProjection
	postQuery      = `*[_type == "post" && slug.current == $slug][0]` + postProjection

	excerptChars = 200
)

// Post is a rendered blog post
type Post struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	Author      string    `json:"author,omitempty"`
	MainImage   string    `json:"main_image,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	HTML        string    `json:"html,omitempty"`
	Summary
}

type cmsPost struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	PublishedAt time.Time `json:"publishedAt"`
	Author      string    `json:"author"`
	MainImage   string    `json:"mainImage"`
	Categories  []string  `json:"categories"`
	Body        []Block   `json:"body"`
}

// Querier runs CMS queries
type Querier interface {
	Query(ctx context.Context, groq string, params map[string]string, out interface{}) error
}

// Service serves rendered posts with a Redis read-through cache
type Service struct {
	cms    Querier
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates a blog service. A nil cache disables caching.
func NewService(cms Querier, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{cms: cms, cache: cache, ttl: ttl, logger: logger}
}

// ListPosts returns the newest posts without their HTML bodies
func (s *Service) ListPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if s.cached(ctx, "blog:posts", &posts) {
		return posts, nil
	}

	var raw []cmsPost
	if err := s.cms.Query(ctx, listQuery, nil, &raw); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []Post{}, nil
		}
		return nil, err
	}

	posts = make([]Post, 0, len(raw))
	for _, p := range raw {
		post, err := render(p)
		if err != nil {
			return nil, err
		}
		post.HTML = ""
		posts = append(posts, *post)
	}
	s.store(ctx, "blog:posts", posts)
	return posts, nil
}

// GetPost returns a single rendered post
func (s *Service) GetPost(ctx context.Context, slug string) (*Post, error) {
	key := "blog:post:" + slug
	var post Post
	if s.cached(ctx, key, &post) {
		return &post, nil
	}

	var raw cmsPost
	if err := s.cms.Query(ctx, postQuery, map[string]string{"slug": slug}, &raw); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("post", slug)
		}
		return nil, err
	}
	rendered, err := render(raw)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, rendered)
	return rendered, nil
}

func render(p cmsPost) (*Post, error) {
	body := RenderHTML(p.Body)
	summary, err := Summarize(body, excerptChars)
	if err != nil {
		return nil, apperrors.Wrapf(err, "summarize post %s", p.Slug)
	}
	return &Post{
		Slug:        p.Slug,
		Title:       p.Title,
		PublishedAt: p.PublishedAt,
		Author:      p.Author,
		MainImage:   p.MainImage,
		Categories:  p.Categories,
		HTML:        body,
		Summary:     summary,
	}, nil
}

func (s *Service) cached(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("blog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *Service) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("blog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
