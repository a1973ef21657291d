package venue

import "github.com/prometheus/client_golang/prometheus"

var enrichmentFailures = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "sprout",
	Subsystem: "venue",
	Name:      "enrichment_failures_total",
	Help:      "Recommendations returned without venues because their lookup failed.",
})

func init() {
	prometheus.MustRegister(enrichmentFailures)
}
