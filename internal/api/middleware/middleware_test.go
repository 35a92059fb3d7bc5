package middleware

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"yolo-transcript/internal/api/errors"
	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/auth"
	"yolo-transcript/internal/app/metrics"
)

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(ErrorHandler(zaptest.NewLogger(t)))
	return r
}

func body(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"api error", errors.NewConflictError("busy"), http.StatusConflict, "busy"},
		{"payment required", errors.NewPaymentRequiredError("Insufficient credits"), http.StatusPaymentRequired, "Insufficient credits"},
		{"wrapped not found", apperrors.NotFound("transcription", "t1"), http.StatusNotFound, ""},
		{"unknown state", apperrors.Wrap(apperrors.ErrUnknownState, "x"), http.StatusForbidden, ""},
		{"raw error recovers as 500", stderrors.New("db exploded"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t)
			r.GET("/", func(c *gin.Context) { HandleError(c, tt.err) })

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			b := body(t, rec)
			if tt.message != "" {
				assert.Equal(t, tt.message, b["error"])
			}
			assert.NotEmpty(t, b["request_id"])
			assert.NotContains(t, rec.Body.String(), "db exploded")
		})
	}
}

func TestRequestIDPropagates(t *testing.T) {
	r := newRouter(t)
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestAuth(t *testing.T) {
	verifier, err := auth.NewVerifier(auth.Config{Secret: "s3cret"})
	require.NoError(t, err)
	other, err := auth.NewVerifier(auth.Config{Secret: "different"})
	require.NoError(t, err)

	good, err := verifier.Sign("user-1", "a@example.com", time.Hour)
	require.NoError(t, err)
	forged, err := other.Sign("user-1", "a@example.com", time.Hour)
	require.NoError(t, err)
	expired, err := verifier.Sign("user-1", "a@example.com", -time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + good, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + good, http.StatusUnauthorized},
		{"forged token", "Bearer " + forged, http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t)
			r.GET("/", Auth(verifier), func(c *gin.Context) {
				c.String(http.StatusOK, UserID(c)+"|"+c.GetString(UserEmailKey))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "user-1|a@example.com", rec.Body.String())
			}
		})
	}
}

type countingLimiter struct {
	keys   []string
	deny   bool
	window time.Duration
}

func (l *countingLimiter) Limit() int            { return 5 }
func (l *countingLimiter) Window() time.Duration { return l.window }

func (l *countingLimiter) Allow(ctx context.Context, key string) bool {
	l.keys = append(l.keys, key)
	return !l.deny
}

func TestRateLimit(t *testing.T) {
	limiter := &countingLimiter{window: 29500 * time.Millisecond}
	r := newRouter(t)
	r.POST("/user", func(c *gin.Context) { c.Set(UserIDKey, "user-1"); c.Next() }, RateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})
	r.POST("/anon", RateLimit(limiter), func(c *gin.Context) { c.Status(http.StatusAccepted) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Empty(t, rec.Header().Get("Retry-After"))

	limiter.deny = true
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/anon", nil)
	req.RemoteAddr = "203.0.113.9:5123"
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))

	assert.Equal(t, []string{"user-1", "ip:203.0.113.9"}, limiter.keys)
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(t)
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"https://app.example.com"}
	r.Use(CORS(cfg))
	r.POST("/api/transcribe", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/transcribe", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Paddle-Signature")

	req = httptest.NewRequest(http.MethodPost, "/api/transcribe", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

type sample struct {
	Name  string `json:"name" binding:"required"`
	Count int    `json:"count" binding:"gte=1"`
}

func (s *sample) Validate() error {
	if strings.HasPrefix(s.Name, "_") {
		return errors.NewValidationError("Invalid sample", map[string]string{"name": "reserved"})
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		field   string
		message string
	}{
		{"missing field", `{"count": 2}`, "name", "is required"},
		{"too small", `{"name": "a", "count": 0}`, "count", "is too small"},
		{"malformed json", `{"name":`, "request", "invalid JSON format"},
		{"domain rule", `{"name": "_x", "count": 1}`, "name", "reserved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t)
			r.POST("/", func(c *gin.Context) {
				var s sample
				if err := ValidateRequest(c, &s); err != nil {
					HandleError(c, err)
					return
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			details := body(t, rec)["details"].(map[string]interface{})
			assert.Equal(t, tt.message, details[tt.field])
		})
	}
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	m := metrics.New()
	r := newRouter(t)
	r.Use(Metrics(m))
	r.GET("/api/transcriptions/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transcriptions/abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	found := false
	for _, f := range families {
		if f.GetName() != "yolo_http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "route" && label.GetValue() == "/api/transcriptions/:id" {
					found = true
				}
			}
		}
	}
	assert.True(t, found)
}
