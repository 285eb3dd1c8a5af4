package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the console service.
type Metrics struct {
	PageLoads        *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	ActiveSessions   prometheus.Gauge
}

// NewMetrics creates and registers the collectors on the given registerer.
// Passing nil registers on the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		PageLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fraudlens",
			Name:      "page_loads_total",
			Help:      "Console page loads by page and result.",
		}, []string{"page", "result"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fraudlens",
			Name:      "upstream_request_duration_seconds",
			Help:      "Risk backend request duration by endpoint and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "status"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fraudlens",
			Name:      "active_sessions",
			Help:      "Sessions currently held in the session store.",
		}),
	}

	reg.MustRegister(m.PageLoads, m.UpstreamDuration, m.ActiveSessions)
	return m
}

// RecordPageLoad counts one page load.
func (m *Metrics) RecordPageLoad(page, result string) {
	if m == nil {
		return
	}
	m.PageLoads.WithLabelValues(page, result).Inc()
}

// ObserveUpstream records one backend call.
func (m *Metrics) ObserveUpstream(endpoint, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamDuration.WithLabelValues(endpoint, status).Observe(elapsed.Seconds())
}

// SessionOpened and SessionClosed track the active session gauge.
func (m *Metrics) SessionOpened() {
	if m != nil {
		m.ActiveSessions.Inc()
	}
}

func (m *Metrics) SessionClosed() {
	if m != nil {
		m.ActiveSessions.Dec()
	}
}
