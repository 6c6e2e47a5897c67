package upstream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK             = "ok"
	outcomeHTTPError      = "http_error"
	outcomeTransportError = "transport_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cashout",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Requests sent to remote services, by outcome.",
		},
		[]string{"service", "method", "outcome"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cashout",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of requests sent to remote services.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method"},
	)
)

func observe(service, method, outcome string, started time.Time) {
	requestsTotal.WithLabelValues(service, method, outcome).Inc()
	requestDuration.WithLabelValues(service, method).Observe(time.Since(started).Seconds())
}
