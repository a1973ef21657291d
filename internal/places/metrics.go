package places

import "github.com/prometheus/client_golang/prometheus"

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sprout",
		Subsystem: "places",
		Name:      "requests_total",
		Help:      "Places API lookups, labeled by operation and outcome.",
	}, []string{"op", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sprout",
		Subsystem: "places",
		Name:      "request_duration_seconds",
		Help:      "Wall time of places API lookups including retries.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8),
	}, []string{"op"})

	breakerState = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "sprout",
		Subsystem: "places",
		Name:      "circuit_state",
		Help:      "Circuit breaker state: 0 closed, 1 half-open, 2 open.",
	})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, breakerState)
}
