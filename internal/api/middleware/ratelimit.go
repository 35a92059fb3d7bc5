package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"yolo-transcript/internal/api/errors"
)

// Limiter decides whether a key is within quota and reports that quota
type Limiter interface {
	Allow(ctx context.Context, key string) bool
	Limit() int
	Window() time.Duration
}

// RateLimit rejects requests over quota with 429. Requests are keyed by
// user id when authenticated and by client IP otherwise.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))

		key := c.GetString(UserIDKey)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		if !limiter.Allow(c.Request.Context(), key) {
			if retryAfter := retryAfterSeconds(limiter.Window()); retryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(retryAfter))
			}
			HandleError(c, errors.NewTooManyRequestsError("Too many requests, slow down"))
			return
		}
		c.Next()
	}
}

// retryAfterSeconds rounds a window up to whole seconds
func retryAfterSeconds(window time.Duration) int {
	if window <= 0 {
		return 0
	}
	return int((window + time.Second - 1) / time.Second)
}
