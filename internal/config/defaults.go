package config

import "time"

// Default configuration values
const (
	DefaultEnvironment = "development"
	DefaultHost        = "0.0.0.0"
	DefaultHTTPPort    = "8080"

	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 5 * time.Minute
	DefaultIdleTimeout     = 2 * time.Minute
	DefaultShutdownTimeout = 20 * time.Second

	DefaultRedisURL        = "redis://localhost:6379/0"
	DefaultMaxOpenConns    = 20
	DefaultMaxIdleConns    = 5
	DefaultConnMaxLife     = 30 * time.Minute
	DefaultProviderTimeout = 60 * time.Second

	DefaultTrialCredits     = 5
	DefaultWebhookTolerance = 5 * time.Minute
	DefaultRateLimit        = 10
	DefaultRateLimitWindow  = time.Minute
	DefaultMinioBucket      = "yolo-media"
	DefaultBlogCacheTTL     = 5 * time.Minute
	DefaultLogLevel         = "info"
	DefaultReconcileBatch   = 500
)
