package provider

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records transcription outcomes for the Prometheus endpoint.
type Metrics struct {
	transcriptions *prometheus.CounterVec
	duration       *prometheus.HistogramVec
}

// NewMetrics creates transcription metrics registered against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		transcriptions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transcription_requests_total",
			Help: "Transcription requests by provider and outcome.",
		}, []string{"provider", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transcription_duration_seconds",
			Help:    "Wall-clock duration of provider transcription calls.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}, []string{"provider"}),
	}
}

// RecordSuccess records a completed transcription call.
func (m *Metrics) RecordSuccess(provider string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.transcriptions.WithLabelValues(provider, "success").Inc()
	m.duration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// RecordFailure records a failed transcription call.
func (m *Metrics) RecordFailure(provider string) {
	if m == nil {
		return
	}
	m.transcriptions.WithLabelValues(provider, "failure").Inc()
}
