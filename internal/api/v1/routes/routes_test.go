package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"yolo-transcript/internal/api/middleware"
	"yolo-transcript/internal/api/v1/dto"
	"yolo-transcript/internal/app/auth"
	"yolo-transcript/internal/app/blog"
	"yolo-transcript/internal/app/testutil"
)

type denyAfter struct {
	allowed int
	seen    int
}

func (d *denyAfter) Limit() int            { return d.allowed }
func (d *denyAfter) Window() time.Duration { return time.Minute }

func (d *denyAfter) Allow(ctx context.Context, key string) bool {
	d.seen++
	return d.seen <= d.allowed
}

func setup(t *testing.T, limiter middleware.Limiter) (*gin.Engine, *testutil.MockServices, *auth.Verifier) {
	gin.SetMode(gin.TestMode)
	verifier, err := auth.NewVerifier(auth.Config{Secret: "jwt-test-secret"})
	require.NoError(t, err)

	ms := testutil.NewMockServices(t)
	container := &ServiceContainer{
		TranscriptionService: ms.TranscriptionService,
		CreditsService:       ms.CreditsService,
		WebhookService:       ms.WebhookService,
		VocabularyService:    ms.VocabularyService,
		IntegrationService:   ms.IntegrationService,
		AnalyticsService:     ms.AnalyticsService,
		BlogService:          ms.BlogService,
		ExportService:        ms.ExportService,
		StorageService:       ms.StorageService,
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(zaptest.NewLogger(t)))
	RegisterRoutes(router.Group("/api"), container, Options{
		Verifier:      verifier,
		Limiter:       limiter,
		CallbackToken: "cb",
	})
	return router, ms, verifier
}

func serve(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _, _ := setup(t, nil)

	paths := []struct{ method, path string }{
		{http.MethodPost, "/api/transcribe"},
		{http.MethodGet, "/api/transcriptions"},
		{http.MethodGet, "/api/transcriptions/export"},
		{http.MethodGet, "/api/transcriptions/t1"},
		{http.MethodPost, "/api/transcriptions/t1/refresh"},
		{http.MethodPost, "/api/upload"},
		{http.MethodGet, "/api/credits"},
		{http.MethodGet, "/api/vocabularies"},
		{http.MethodGet, "/api/integrations"},
		{http.MethodGet, "/api/integrations/google-drive/connect"},
		{http.MethodGet, "/api/analytics"},
		{http.MethodGet, "/api/quality"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := serve(router, p.method, p.path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}

	rec := serve(router, http.MethodGet, "/api/credits", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatedRequestReachesService(t *testing.T) {
	router, ms, verifier := setup(t, nil)
	token, err := verifier.Sign(testutil.TestUserID, "dev@example.com", time.Hour)
	require.NoError(t, err)

	ms.CreditsService.On("GetCredits", mock.Anything, testutil.TestUserID).
		Return(&dto.CreditsResponse{Balance: 4}, nil).Once()

	rec := serve(router, http.MethodGet, "/api/credits", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"credits_balance":4`)
	ms.CreditsService.AssertExpectations(t)
}

func TestPublicRoutes(t *testing.T) {
	router, ms, _ := setup(t, nil)
	ms.BlogService.On("ListPosts", mock.Anything).Return([]blog.Post{{Slug: "hello", Title: "Hello"}}, nil)
	ms.WebhookService.On("HandleWebhook", mock.Anything, "", []byte(`{}`)).
		Return(&dto.WebhookResponse{Received: true, Status: dto.WebhookIgnored}, nil)

	rec := serve(router, http.MethodGet, "/api/blog", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPost, "/api/webhook", "", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTranscribeIsRateLimited(t *testing.T) {
	limiter := &denyAfter{allowed: 0}
	router, ms, verifier := setup(t, limiter)
	token, err := verifier.Sign(testutil.TestUserID, "", time.Hour)
	require.NoError(t, err)

	rec := serve(router, http.MethodPost, "/api/transcribe", token, `{}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, 1, limiter.seen)
	ms.TranscriptionService.AssertNotCalled(t, "CreateTranscription", mock.Anything, mock.Anything, mock.Anything)
}
