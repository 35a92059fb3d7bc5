package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/server"
	v1routes "yolo-transcript/internal/api/v1/routes"
	"yolo-transcript/internal/api/v1/services"
	"yolo-transcript/internal/app/api/assemblyai"
	"yolo-transcript/internal/app/auth"
	"yolo-transcript/internal/app/billing"
	"yolo-transcript/internal/app/blog"
	"yolo-transcript/internal/app/integrations/googledrive"
	"yolo-transcript/internal/app/metrics"
	"yolo-transcript/internal/app/poller"
	"yolo-transcript/internal/app/progress"
	"yolo-transcript/internal/app/ratelimit"
	"yolo-transcript/internal/app/reconcile"
	"yolo-transcript/internal/app/repository"
	"yolo-transcript/internal/app/repository/pg"
	"yolo-transcript/internal/app/storage"
	"yolo-transcript/internal/config"
)

const (
	oauthStatePrefix = "yolo:oauth:state"
	oauthStateTTL    = 10 * time.Minute
	rateLimitPrefix  = "yolo:ratelimit:transcribe"
)

// Application is the fully wired API process
type Application struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *pg.PostgresDB
	Poller *poller.Poller
	Server *server.Server
}

func newApplication(cfg *config.Config, logger *zap.Logger, db *pg.PostgresDB, p *poller.Poller, srv *server.Server) *Application {
	return &Application{Config: cfg, Logger: logger, DB: db, Poller: p, Server: srv}
}

func providePostgres(cfg *config.Config) (*pg.PostgresDB, func(), error) {
	db, err := pg.NewPostgresDB(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return db, func() { _ = db.Close() }, nil
}

func provideRedis(cfg *config.Config, logger *zap.Logger) (*redis.Client, func(), error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
	}
	return client, cleanup, nil
}

func provideSpeechToText(cfg *config.Config) *assemblyai.Client {
	return assemblyai.NewClient(cfg.AssemblyAI)
}

func provideDrive(cfg *config.Config, client *redis.Client, store repository.Store, logger *zap.Logger, m *metrics.Metrics) *googledrive.Service {
	if !cfg.Google.Enabled() {
		return nil
	}
	return googledrive.NewService(
		googledrive.NewOAuth2Config(cfg.Google.OAuthConfig),
		googledrive.NewStateStore(client, oauthStatePrefix, oauthStateTTL),
		store,
		store,
		googledrive.DriveAPI{},
		logger,
		m,
	)
}

// providePoller arms Drive auto-sync on completion when Drive is configured
func providePoller(cfg *config.Config, stt *assemblyai.Client, store repository.Store, drive *googledrive.Service, logger *zap.Logger, m *metrics.Metrics) (*poller.Poller, func()) {
	p := poller.New(stt, store, logger, m, cfg.Poller)
	if drive != nil {
		p.OnComplete(drive.SyncHook())
	}
	return p, p.Stop
}

// providePricing loads credit packs. TRIAL_CREDITS overrides the file so
// every route seeds the same trial.
func providePricing(cfg *config.Config) (*billing.Pricing, error) {
	pricing, err := billing.LoadPricing(cfg.Transcription.PricingFile)
	if err != nil {
		return nil, err
	}
	pricing.TrialCredits = cfg.Transcription.TrialCredits
	return pricing, nil
}

func provideMediaStore(cfg *config.Config, stt *assemblyai.Client, logger *zap.Logger) (storage.MediaStore, error) {
	if !cfg.Minio.Enabled() {
		logger.Info("object storage not configured, uploading media to the provider")
		return storage.NewProviderStore(stt), nil
	}
	store, err := storage.NewMinioStore(cfg.Minio)
	if err != nil {
		return nil, fmt.Errorf("create minio store: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket %s: %w", cfg.Minio.Bucket, err)
	}
	return store, nil
}

func provideVerifier(cfg *config.Config) (*auth.Verifier, error) {
	return auth.NewVerifier(cfg.Auth)
}

func provideLimiter(cfg *config.Config, client *redis.Client) (middleware.Limiter, error) {
	if cfg.RateLimit.Limit == 0 {
		return nil, nil
	}
	return ratelimit.NewFixedWindowLimiter(client, rateLimitPrefix, cfg.RateLimit.Limit, cfg.RateLimit.Window)
}

func provideRouteOptions(cfg *config.Config, verifier *auth.Verifier, limiter middleware.Limiter) v1routes.Options {
	return v1routes.Options{
		Verifier:         verifier,
		Limiter:          limiter,
		CallbackToken:    cfg.Transcription.CallbackToken,
		OAuthRedirectURL: cfg.Google.SuccessRedirectURL,
	}
}

// provideServiceContainer builds every v1 service. Optional integrations
// are passed as untyped nil so the services see them as absent.
func provideServiceContainer(
	cfg *config.Config,
	store repository.Store,
	stt *assemblyai.Client,
	p *poller.Poller,
	drive *googledrive.Service,
	client *redis.Client,
	pricing *billing.Pricing,
	media storage.MediaStore,
	logger *zap.Logger,
	m *metrics.Metrics,
) *v1routes.ServiceContainer {
	var customers services.CustomerLookup
	if cfg.Paddle.APIKey != "" {
		customers = billing.NewPaddleClient(cfg.Paddle.BaseURL, cfg.Paddle.APIKey, &http.Client{Timeout: 15 * time.Second})
	}

	var driveIntegration services.DriveIntegration
	if drive != nil {
		driveIntegration = drive
	}

	var posts services.PostSource
	if cfg.Sanity.Enabled() {
		posts = blog.NewService(blog.NewSanityClient(cfg.Sanity), client, cfg.BlogCacheTTL, logger)
	}

	return &v1routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(store, stt, p, services.TranscriptionConfig{
			TrialCredits:  pricing.TrialCredits,
			CallbackURL:   cfg.Transcription.CallbackURL,
			CallbackToken: cfg.Transcription.CallbackToken,
		}, logger, m),
		CreditsService: services.NewCreditsService(store, pricing),
		WebhookService: services.NewWebhookService(store, pricing, customers, services.WebhookConfig{
			Secret:    cfg.Paddle.WebhookSecret,
			Tolerance: cfg.Paddle.Tolerance,
		}, logger, m),
		VocabularyService:  services.NewVocabularyService(store),
		IntegrationService: services.NewIntegrationService(store, driveIntegration, logger),
		AnalyticsService:   services.NewAnalyticsService(store),
		BlogService:        services.NewBlogService(posts, logger),
		ExportService:      services.NewExportService(store),
		StorageService:     services.NewStorageService(media, logger),
	}
}

func provideServer(cfg *config.Config, container *v1routes.ServiceContainer, opts v1routes.Options, db *pg.PostgresDB, m *metrics.Metrics, logger *zap.Logger) *server.Server {
	return server.NewServer(server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Environment:  cfg.Server.Environment,
		AllowOrigins: cfg.Server.AllowOrigins,
	}, container, opts, db, m, logger)
}

func provideReconciler(store repository.Store, p *poller.Poller, pm *progress.Manager, logger *zap.Logger) *reconcile.Reconciler {
	return reconcile.New(store, p, pm, logger)
}
