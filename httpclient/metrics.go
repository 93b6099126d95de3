package httpclient

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricNamespace is the prometheus namespace for all SDK metrics.
	MetricNamespace = "daex"

	// MetricSubsystem is the prometheus subsystem for outbound HTTP metrics.
	MetricSubsystem = "httpclient"

	// OutboundTransactionsName is the name of the outbound transaction counter.
	OutboundTransactionsName = "transactions_total"

	// OutboundDurationName is the name of the outbound duration histogram.
	OutboundDurationName = "transaction_duration_seconds"

	// CodeLabel is the metric label carrying the status code class, e.g. "2xx",
	// or "error" for transactions that failed without a response.
	CodeLabel = "code"
)

// OutboundMetrics holds the prometheus instruments observed by
// MetricsRoundTripper.
type OutboundMetrics struct {
	Transactions *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
}

// NewOutboundMetrics creates the outbound HTTP instruments and, if
// registerer is not nil, registers them.
func NewOutboundMetrics(registerer prometheus.Registerer) (*OutboundMetrics, error) {
	m := &OutboundMetrics{
		Transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: MetricNamespace,
				Subsystem: MetricSubsystem,
				Name:      OutboundTransactionsName,
				Help:      "the total count of outbound HTTP transactions",
			},
			[]string{CodeLabel},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: MetricNamespace,
				Subsystem: MetricSubsystem,
				Name:      OutboundDurationName,
				Help:      "the end-to-end duration of outbound HTTP transactions in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{CodeLabel},
		),
	}

	if registerer != nil {
		for _, collector := range []prometheus.Collector{m.Transactions, m.Duration} {
			if err := registerer.Register(collector); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// statusClass collapses a status code into its class label, e.g. "2xx"
func statusClass(code int) string {
	if code >= 100 && code < 600 {
		return strconv.Itoa(code/100) + "xx"
	}

	return "unknown"
}

// metricsRoundTripper decorates a RoundTripper with outbound instrumentation
type metricsRoundTripper struct {
	metrics *OutboundMetrics
	next    http.RoundTripper
}

func (m *metricsRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	start := time.Now()
	response, err := m.next.RoundTrip(request)
	duration := time.Since(start)

	code := "error"
	if err == nil {
		code = statusClass(response.StatusCode)
	}

	m.metrics.Transactions.WithLabelValues(code).Inc()
	m.metrics.Duration.WithLabelValues(code).Observe(duration.Seconds())

	return response, err
}

// MetricsRoundTripper returns a network-level decorator that instruments
// every outbound HTTP transaction with the given metrics.  It composes with
// LoggingRoundTripper in either order.
func MetricsRoundTripper(metrics *OutboundMetrics) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		if next == nil {
			next = http.DefaultTransport
		}

		return &metricsRoundTripper{
			metrics: metrics,
			next:    next,
		}
	}
}
