package metrics_test

import (
	"testing"

	"github.com/SscSPs/quote_pricing_app/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveQuote(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveQuote("ok")
	m.ObserveQuote("ok")
	m.ObserveQuote("NO_COST")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.QuotesTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuotesTotal.WithLabelValues("NO_COST")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveQuote("ok")
		m.ObserveBatch(3)
	})
}
