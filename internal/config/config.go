package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"yolo-transcript/internal/app/api/assemblyai"
	"yolo-transcript/internal/app/auth"
	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/billing"
	"yolo-transcript/internal/app/blog"
	"yolo-transcript/internal/app/integrations/googledrive"
	"yolo-transcript/internal/app/poller"
	"yolo-transcript/internal/app/repository/pg"
	"yolo-transcript/internal/app/storage"
)

// Config is the full runtime configuration of the service
type Config struct {
	Server        ServerConfig
	Log           LogConfig
	Database      pg.Config
	RedisURL      string
	Auth          auth.Config
	AssemblyAI    assemblyai.Config
	Transcription TranscriptionConfig
	Poller        poller.Config
	Paddle        PaddleConfig
	Google        GoogleConfig
	Minio         storage.MinioConfig
	Sanity        blog.SanityConfig
	BlogCacheTTL  time.Duration
	RateLimit     RateLimitConfig
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Environment     string
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	AllowOrigins    []string
}

// LogConfig selects the zap encoder and level
type LogConfig struct {
	Level string
	// Format is "json" or "console". Empty picks by environment.
	Format string
}

// TranscriptionConfig configures job submission
type TranscriptionConfig struct {
	TrialCredits  int
	CallbackURL   string
	CallbackToken string
	PricingFile   string
}

// PaddleConfig configures the payment provider
type PaddleConfig struct {
	WebhookSecret string
	APIKey        string
	BaseURL       string
	Tolerance     time.Duration
}

// GoogleConfig configures the Google Drive integration
type GoogleConfig struct {
	googledrive.OAuthConfig
	// SuccessRedirectURL is where the browser lands after connecting
	SuccessRedirectURL string
}

// RateLimitConfig throttles job submission per user
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from the process environment. Call LoadEnv
// first to pick up a .env file.
func Load() (*Config, error) {
	r := &envReader{}

	cfg := &Config{
		Server: ServerConfig{
			Environment:     r.string("ENVIRONMENT", DefaultEnvironment),
			Host:            r.string("HOST", DefaultHost),
			Port:            r.string("PORT", DefaultHTTPPort),
			ReadTimeout:     r.duration("HTTP_READ_TIMEOUT", DefaultReadTimeout),
			WriteTimeout:    r.duration("HTTP_WRITE_TIMEOUT", DefaultWriteTimeout),
			IdleTimeout:     r.duration("HTTP_IDLE_TIMEOUT", DefaultIdleTimeout),
			ShutdownTimeout: r.duration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
			AllowOrigins:    r.list("CORS_ALLOW_ORIGINS"),
		},
		Log: LogConfig{
			Level:  r.string("LOG_LEVEL", DefaultLogLevel),
			Format: r.string("LOG_FORMAT", ""),
		},
		Database: pg.Config{
			DSN:          postgresDSN(r),
			MaxOpenConns: r.int("DB_MAX_OPEN_CONNS", DefaultMaxOpenConns),
			MaxIdleConns: r.int("DB_MAX_IDLE_CONNS", DefaultMaxIdleConns),
			ConnMaxLife:  r.duration("DB_CONN_MAX_LIFETIME", DefaultConnMaxLife),
		},
		RedisURL: r.string("REDIS_URL", DefaultRedisURL),
		Auth: auth.Config{
			Secret:   r.string("AUTH_JWT_SECRET", ""),
			Issuer:   r.string("AUTH_JWT_ISSUER", ""),
			Audience: r.string("AUTH_JWT_AUDIENCE", ""),
		},
		AssemblyAI: assemblyai.Config{
			APIKey:  r.string("ASSEMBLYAI_API_KEY", ""),
			BaseURL: r.string("ASSEMBLYAI_BASE_URL", assemblyai.DefaultBaseURL),
			Timeout: r.duration("ASSEMBLYAI_TIMEOUT", DefaultProviderTimeout),
		},
		Transcription: TranscriptionConfig{
			TrialCredits:  r.int("TRIAL_CREDITS", DefaultTrialCredits),
			CallbackURL:   r.string("TRANSCRIBE_CALLBACK_URL", ""),
			CallbackToken: r.string("TRANSCRIBE_CALLBACK_TOKEN", ""),
			PricingFile:   r.string("PRICING_FILE", ""),
		},
		Poller: poller.Config{
			Delays:       r.durations("POLL_DELAYS", poller.DefaultDelays),
			CheckTimeout: r.duration("POLL_CHECK_TIMEOUT", 30*time.Second),
		},
		Paddle: PaddleConfig{
			WebhookSecret: r.string("PADDLE_WEBHOOK_SECRET", ""),
			APIKey:        r.string("PADDLE_API_KEY", ""),
			BaseURL:       paddleBaseURL(r.string("PADDLE_ENVIRONMENT", "production")),
			Tolerance:     r.duration("PADDLE_WEBHOOK_TOLERANCE", DefaultWebhookTolerance),
		},
		Google: GoogleConfig{
			OAuthConfig: googledrive.OAuthConfig{
				ClientID:     r.string("GOOGLE_CLIENT_ID", ""),
				ClientSecret: r.string("GOOGLE_CLIENT_SECRET", ""),
				RedirectURL:  r.string("GOOGLE_REDIRECT_URL", ""),
			},
			SuccessRedirectURL: r.string("GOOGLE_SUCCESS_REDIRECT_URL", ""),
		},
		Minio: storage.MinioConfig{
			Endpoint:   r.string("MINIO_ENDPOINT", ""),
			AccessKey:  r.string("MINIO_ACCESS_KEY", ""),
			SecretKey:  r.string("MINIO_SECRET_KEY", ""),
			Bucket:     r.string("MINIO_BUCKET", DefaultMinioBucket),
			Region:     r.string("MINIO_REGION", ""),
			UseSSL:     r.bool("MINIO_USE_SSL", true),
			PresignTTL: r.duration("MINIO_PRESIGN_TTL", 0),
		},
		Sanity: blog.SanityConfig{
			ProjectID:  r.string("SANITY_PROJECT_ID", ""),
			Dataset:    r.string("SANITY_DATASET", ""),
			APIVersion: r.string("SANITY_API_VERSION", ""),
			Token:      r.string("SANITY_TOKEN", ""),
		},
		BlogCacheTTL: r.duration("BLOG_CACHE_TTL", DefaultBlogCacheTTL),
		RateLimit: RateLimitConfig{
			Limit:  r.int("RATE_LIMIT_TRANSCRIBE", DefaultRateLimit),
			Window: r.duration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),
		},
	}

	if err := r.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// postgresDSN prefers DATABASE_URL and falls back to DB_* parts
func postgresDSN(r *envReader) string {
	if dsn := r.string("DATABASE_URL", ""); dsn != "" {
		return dsn
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(r.string("DB_USER", "postgres"), r.string("DB_PASSWORD", "")),
		Host:   r.string("DB_HOST", "localhost") + ":" + r.string("DB_PORT", "5432"),
		Path:   "/" + r.string("DB_NAME", "postgres"),
	}
	q := url.Values{}
	q.Set("sslmode", r.string("DB_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String()
}

func paddleBaseURL(environment string) string {
	if strings.EqualFold(environment, "sandbox") {
		return billing.SandboxPaddleBaseURL
	}
	return billing.DefaultPaddleBaseURL
}

// Validate fails fast on configuration the server cannot run without
func (c *Config) Validate() error {
	var problems []error
	add := func(err error) {
		if err != nil {
			problems = append(problems, err)
		}
	}

	add(ValidatePort(c.Server.Port, "HTTP"))
	add(ValidateTimeout(c.Server.ReadTimeout, "HTTP read"))
	add(ValidateTimeout(c.Server.WriteTimeout, "HTTP write"))
	add(ValidateRequired(c.Database.DSN, "DATABASE_URL"))
	add(ValidateRequired(c.Auth.Secret, "AUTH_JWT_SECRET"))
	add(ValidateAPIKey(c.AssemblyAI.APIKey, "AssemblyAI"))
	add(ValidateURL(c.AssemblyAI.BaseURL, "ASSEMBLYAI_BASE_URL"))
	add(ValidateRequired(c.Paddle.WebhookSecret, "PADDLE_WEBHOOK_SECRET"))
	add(ValidateTimeout(c.Paddle.Tolerance, "webhook signature"))
	add(ValidateDelays(c.Poller.Delays))

	if c.Transcription.TrialCredits < 0 {
		problems = append(problems, errors.New("TRIAL_CREDITS cannot be negative"))
	}
	if c.Transcription.CallbackURL != "" {
		add(ValidateURL(c.Transcription.CallbackURL, "TRANSCRIBE_CALLBACK_URL"))
		add(ValidateRequired(c.Transcription.CallbackToken, "TRANSCRIBE_CALLBACK_TOKEN"))
	}
	if c.Google.ClientID != "" || c.Google.ClientSecret != "" {
		add(ValidateRequired(c.Google.ClientID, "GOOGLE_CLIENT_ID"))
		add(ValidateRequired(c.Google.ClientSecret, "GOOGLE_CLIENT_SECRET"))
		add(ValidateURL(c.Google.RedirectURL, "GOOGLE_REDIRECT_URL"))
	}
	if c.RateLimit.Limit < 0 {
		problems = append(problems, errors.New("RATE_LIMIT_TRANSCRIBE cannot be negative"))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidConfig, errors.Join(problems...))
	}
	return nil
}
