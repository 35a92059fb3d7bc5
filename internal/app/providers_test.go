package app

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/app/api/assemblyai"
	"yolo-transcript/internal/app/auth"
	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/integrations/googledrive"
	"yolo-transcript/internal/app/metrics"
	"yolo-transcript/internal/app/ratelimit"
	"yolo-transcript/internal/app/storage"
	"yolo-transcript/internal/app/testutil"
	"yolo-transcript/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{RedisURL: "redis://localhost:6379/0"}
	cfg.Auth = auth.Config{Secret: "jwt-secret"}
	cfg.RateLimit = config.RateLimitConfig{Limit: 10, Window: time.Minute}
	cfg.Transcription.CallbackToken = "cb-secret"
	cfg.Google.SuccessRedirectURL = "https://app.example.com/settings"
	return cfg
}

func newRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestProvideRedis(t *testing.T) {
	cfg := testConfig()
	client, cleanup, err := provideRedis(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", client.Options().Addr)
	cleanup()

	cfg.RedisURL = "mysql://nope"
	_, _, err = provideRedis(cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestProvideLimiter(t *testing.T) {
	cfg := testConfig()
	client := newRedis(t)

	limiter, err := provideLimiter(cfg, client)
	require.NoError(t, err)
	assert.IsType(t, &ratelimit.FixedWindowLimiter{}, limiter)
	assert.Equal(t, cfg.RateLimit.Limit, limiter.Limit())
	assert.Equal(t, cfg.RateLimit.Window, limiter.Window())

	cfg.RateLimit.Limit = 0
	limiter, err = provideLimiter(cfg, client)
	require.NoError(t, err)
	assert.Nil(t, limiter, "zero limit disables throttling")
}

func TestProvideRouteOptions(t *testing.T) {
	cfg := testConfig()
	verifier, err := provideVerifier(cfg)
	require.NoError(t, err)

	opts := provideRouteOptions(cfg, verifier, nil)
	assert.Equal(t, "cb-secret", opts.CallbackToken)
	assert.Equal(t, "https://app.example.com/settings", opts.OAuthRedirectURL)
	assert.Nil(t, opts.Limiter)
}

func TestProvideMediaStore_FallsBackToProvider(t *testing.T) {
	cfg := testConfig()
	store, err := provideMediaStore(cfg, assemblyai.NewClient(assemblyai.Config{APIKey: "k"}), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.IsType(t, &storage.ProviderStore{}, store)
}

func TestProvideDrive_DisabledWithoutCredentials(t *testing.T) {
	cfg := testConfig()
	drive := provideDrive(cfg, newRedis(t), testutil.NewMockStore(t), zaptest.NewLogger(t), metrics.New())
	assert.Nil(t, drive)

	cfg.Google.OAuthConfig = googledrive.OAuthConfig{ClientID: "id", ClientSecret: "secret", RedirectURL: "https://api.example.com/cb"}
	drive = provideDrive(cfg, newRedis(t), testutil.NewMockStore(t), zaptest.NewLogger(t), metrics.New())
	assert.NotNil(t, drive)
}

func TestProvideServiceContainer(t *testing.T) {
	cfg := testConfig()
	store := testutil.NewMockStore(t)
	stt := assemblyai.NewClient(assemblyai.Config{APIKey: "k"})
	m := metrics.New()
	logger := zaptest.NewLogger(t)

	p, stop := providePoller(cfg, stt, store, nil, logger, m)
	defer stop()
	pricing, err := providePricing(cfg)
	require.NoError(t, err)

	container := provideServiceContainer(cfg, store, stt, p, nil, newRedis(t), pricing, storage.NewProviderStore(stt), logger, m)

	assert.NotNil(t, container.TranscriptionService)
	assert.NotNil(t, container.WebhookService)
	assert.NotNil(t, container.IntegrationService)
	assert.NotNil(t, container.BlogService)
	assert.NotNil(t, container.StorageService)
}

func TestProvideServiceContainer_SingleTrialCreditSource(t *testing.T) {
	cfg := testConfig()
	cfg.Transcription.TrialCredits = 10
	store := testutil.NewMockStore(t)
	stt := assemblyai.NewClient(assemblyai.Config{APIKey: "k"})
	m := metrics.New()
	logger := zaptest.NewLogger(t)

	p, stop := providePoller(cfg, stt, store, nil, logger, m)
	defer stop()
	pricing, err := providePricing(cfg)
	require.NoError(t, err)
	assert.Equal(t, 10, pricing.TrialCredits)

	container := provideServiceContainer(cfg, store, stt, p, nil, newRedis(t), pricing, storage.NewProviderStore(stt), logger, m)
	ctx := context.Background()

	store.On("GetOrCreateCredits", mock.Anything, "user-1", 10).Return(nil, assert.AnError).Twice()
	store.On("GetDefaultVocabulary", mock.Anything, "user-1").Return(nil, apperrors.ErrNotFound).Once()

	_, err = container.CreditsService.GetCredits(ctx, "user-1")
	require.Error(t, err)
	_, err = container.TranscriptionService.CreateTranscription(ctx, "user-1", &dto.CreateTranscriptionRequest{
		AudioURL:        "https://cdn.example.com/a.mp3",
		FileName:        "a.mp3",
		DurationSeconds: 300,
	})
	require.Error(t, err)

	store.AssertExpectations(t)
}
