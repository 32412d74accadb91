package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	NotesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_created_total",
			Help: "Total number of notes created per tenant",
		},
		[]string{"tenant"},
	)

	QuotaDenied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "note_quota_denied_total",
			Help: "Total number of note creates rejected by the plan quota",
		},
		[]string{"tenant"},
	)

	EventsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_events_recorded_total",
			Help: "Total number of domain events persisted to the audit trail",
		},
		[]string{"tenant"},
	)

	RecorderActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "events_recorder_active_workers",
			Help: "Number of active event recorder workers",
		},
	)

	EventQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "event_queue_depth",
			Help: "Current RabbitMQ depth of the tenant events queue",
		},
	)
)

// Init registers metrics with Prometheus
func Init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(NotesCreated)
	prometheus.MustRegister(QuotaDenied)
	prometheus.MustRegister(EventsRecorded)
	prometheus.MustRegister(RecorderActive)
	prometheus.MustRegister(EventQueueDepth)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
