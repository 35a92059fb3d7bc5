package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds every collector exported by the service
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	creditsDebited   prometheus.Counter
	creditsRefunded  prometheus.Counter
	creditsPurchased prometheus.Counter
	webhookEvents    *prometheus.CounterVec
	pollChecks       *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	driveSyncs       *prometheus.CounterVec
}

// New creates collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yolo",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "yolo",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		creditsDebited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "yolo",
			Name:      "credits_debited_total",
			Help:      "Credits charged for transcriptions.",
		}),
		creditsRefunded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "yolo",
			Name:      "credits_refunded_total",
			Help:      "Credits returned after failed job submission.",
		}),
		creditsPurchased: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "yolo",
			Name:      "credits_purchased_total",
			Help:      "Credits granted by payment webhooks.",
		}),
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yolo",
			Name:      "webhook_events_total",
			Help:      "Payment webhook deliveries by outcome.",
		}, []string{"event_type", "outcome"}),
		pollChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yolo",
			Name:      "transcription_status_checks_total",
			Help:      "Provider status checks by resulting status.",
		}, []string{"status"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "yolo",
			Name:      "provider_request_duration_seconds",
			Help:      "Latency of calls to external providers.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provider", "operation"}),
		driveSyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yolo",
			Name:      "drive_syncs_total",
			Help:      "Transcript uploads to cloud storage by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.creditsDebited,
		m.creditsRefunded,
		m.creditsPurchased,
		m.webhookEvents,
		m.pollChecks,
		m.providerLatency,
		m.driveSyncs,
	)
	return m
}

// ObserveHTTP records a finished HTTP request
func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) CreditsDebited(n int) {
	if m != nil {
		m.creditsDebited.Add(float64(n))
	}
}

func (m *Metrics) CreditsRefunded(n int) {
	if m != nil {
		m.creditsRefunded.Add(float64(n))
	}
}

func (m *Metrics) CreditsPurchased(n int) {
	if m != nil {
		m.creditsPurchased.Add(float64(n))
	}
}

func (m *Metrics) WebhookEvent(eventType, outcome string) {
	if m != nil {
		m.webhookEvents.WithLabelValues(eventType, outcome).Inc()
	}
}

func (m *Metrics) PollCheck(status string) {
	if m != nil {
		m.pollChecks.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) DriveSync(outcome string) {
	if m != nil {
		m.driveSyncs.WithLabelValues(outcome).Inc()
	}
}

// ObserveProvider records how long an external call took
func (m *Metrics) ObserveProvider(provider, operation string, start time.Time) {
	if m != nil {
		m.providerLatency.WithLabelValues(provider, operation).Observe(time.Since(start).Seconds())
	}
}
