package pbi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records client-side request telemetry. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RetriesTotal    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pbi_http_requests_total",
			Help: "HTTP attempts by status code, including retries; code is \"error\" when an attempt got no response",
		}, []string{"method", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pbi_http_request_duration_seconds",
			Help:    "API call latency including retries",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		RetriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pbi_http_retries_total",
			Help: "Retried HTTP attempts",
		}, []string{"method"}),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.RetriesTotal)
	return m
}

func (m *Metrics) observeResponse(method string, code int) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
}

func (m *Metrics) observeFailure(method string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, "error").Inc()
}

func (m *Metrics) observeRetry(method string) {
	if m == nil {
		return
	}
	m.RetriesTotal.WithLabelValues(method).Inc()
}

func (m *Metrics) observeDuration(method string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method).Observe(d.Seconds())
}
