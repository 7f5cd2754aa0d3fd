package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors exported by the service.
type Metrics struct {
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDurationMs *prometheus.HistogramVec
	QuotesTotal           *prometheus.CounterVec
	BatchSize             prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDurationMs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_ms",
			Help:    "HTTP request duration in ms",
			Buckets: []float64{50, 100, 200, 500, 1000, 2000, 5000},
		}, []string{"method", "route", "status"}),
		QuotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quotes_total",
			Help: "Total number of quotes computed",
		}, []string{"result"}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quote_batch_size",
			Help:    "Number of items per batch quote request",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		}),
	}
	reg.MustRegister(m.HTTPRequestsTotal, m.HTTPRequestDurationMs, m.QuotesTotal, m.BatchSize)
	return m
}

// ObserveQuote counts one quote outcome. result is "ok" or an error kind.
func (m *Metrics) ObserveQuote(result string) {
	if m == nil {
		return
	}
	m.QuotesTotal.WithLabelValues(result).Inc()
}

// ObserveBatch records the size of a batch request.
func (m *Metrics) ObserveBatch(size int) {
	if m == nil {
		return
	}
	m.BatchSize.Observe(float64(size))
}
