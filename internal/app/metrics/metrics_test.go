package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.CreditsDebited(3)
	m.CreditsDebited(2)
	m.CreditsRefunded(1)
	m.WebhookEvent("transaction.completed", "processed")
	m.PollCheck("completed")
	m.ObserveHTTP("/api/transcribe", http.MethodPost, http.StatusCreated, 30*time.Millisecond)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.creditsDebited))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.creditsRefunded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhookEvents.WithLabelValues("transaction.completed", "processed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pollChecks.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/transcribe", "POST", "201")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CreditsDebited(1)
		m.WebhookEvent("x", "y")
		m.ObserveHTTP("", "GET", 200, time.Second)
		m.ObserveProvider("stt", "get", time.Now())
	})
}
