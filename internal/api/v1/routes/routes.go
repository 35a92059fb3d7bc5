package routes

import (
	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/handlers"
	"yolo-transcript/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	CreditsService       services.CreditsService
	WebhookService       services.WebhookService
	VocabularyService    services.VocabularyService
	IntegrationService   services.IntegrationService
	AnalyticsService     services.AnalyticsService
	BlogService          services.BlogService
	ExportService        services.ExportService
	StorageService       services.StorageService
}

// Options configures authentication and throttling of the API group
type Options struct {
	Verifier middleware.TokenVerifier
	// Limiter throttles job submission. Nil disables rate limiting.
	Limiter          middleware.Limiter
	CallbackToken    string
	OAuthRedirectURL string
}

// RegisterRoutes registers all API routes under the /api group
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer, opts Options) {
	auth := middleware.Auth(opts.Verifier)

	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService, opts.CallbackToken)
	integrationHandler := handlers.NewIntegrationHandler(container.IntegrationService, opts.OAuthRedirectURL)

	// Unauthenticated routes verify the caller some other way
	router.POST("/transcribe/callback", transcriptionHandler.Callback)
	router.POST("/webhook", handlers.NewWebhookHandler(container.WebhookService).Handle)
	router.GET("/integrations/google-drive/callback", integrationHandler.Callback)

	blogHandler := handlers.NewBlogHandler(container.BlogService)
	blog := router.Group("/blog")
	{
		blog.GET("", blogHandler.List)
		blog.GET("/:slug", blogHandler.Get)
	}

	authed := router.Group("", auth)

	authed.POST("/transcribe",
		middleware.RateLimit(opts.Limiter),
		transcriptionHandler.Create)

	exportHandler := handlers.NewExportHandler(container.ExportService)
	transcriptions := authed.Group("/transcriptions")
	{
		transcriptions.GET("", transcriptionHandler.List)
		transcriptions.GET("/export", exportHandler.Export)
		transcriptions.GET("/:id", transcriptionHandler.Get)
		transcriptions.PATCH("/:id", transcriptionHandler.Update)
		transcriptions.PATCH("/:id/review", transcriptionHandler.Review)
		transcriptions.POST("/:id/refresh", transcriptionHandler.Refresh)
		transcriptions.GET("/:id/utterances", transcriptionHandler.Utterances)
		transcriptions.GET("/:id/sentiment", transcriptionHandler.Sentiment)
		transcriptions.POST("/:id/sync-drive", integrationHandler.Sync)
	}

	authed.POST("/upload", handlers.NewUploadHandler(container.StorageService).Upload)
	authed.GET("/credits", handlers.NewCreditsHandler(container.CreditsService).Get)

	vocabularyHandler := handlers.NewVocabularyHandler(container.VocabularyService)
	vocabularies := authed.Group("/vocabularies")
	{
		vocabularies.GET("", vocabularyHandler.List)
		vocabularies.POST("", vocabularyHandler.Create)
		vocabularies.PUT("/:id", vocabularyHandler.Update)
		vocabularies.DELETE("/:id", vocabularyHandler.Delete)
	}

	integrations := authed.Group("/integrations")
	{
		integrations.GET("", integrationHandler.List)
		integrations.GET("/google-drive/connect", integrationHandler.Connect)
		integrations.PUT("/google-drive/settings", integrationHandler.UpdateSettings)
		integrations.DELETE("/:provider", integrationHandler.Disconnect)
	}

	analyticsHandler := handlers.NewAnalyticsHandler(container.AnalyticsService)
	authed.GET("/analytics", analyticsHandler.Analytics)
	authed.GET("/quality", analyticsHandler.Quality)
}
