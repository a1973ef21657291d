package places

import (
	"time"

	"github.com/alexanderramin/sprout/internal/logging"
)

// Op names a places operation.
type Op string

const (
	OpSearch  Op = "search"
	OpGeocode Op = "geocode"
)

// CallEvent records one completed lookup.
type CallEvent struct {
	Op      Op
	Query   string
	Latency time.Duration
	Results int
	Status  string
	Err     error
}

// Observer receives events about places calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to the global logger at debug level, and
// failures at warn.
type LogObserver struct{}

func (LogObserver) OnCallComplete(e CallEvent) {
	ev := logging.Debug()
	if e.Err != nil {
		ev = logging.Warn().Err(e.Err)
	}
	ev.Str("op", string(e.Op)).
		Str("query", e.Query).
		Dur("latency", e.Latency).
		Int("results", e.Results).
		Str("status", e.Status).
		Msg("places call")
}

// MetricsObserver records call events in prometheus.
type MetricsObserver struct{}

func (MetricsObserver) OnCallComplete(e CallEvent) {
	requestsTotal.WithLabelValues(string(e.Op), e.Status).Inc()
	requestDuration.WithLabelValues(string(e.Op)).Observe(e.Latency.Seconds())
}

// MultiObserver fans an event out to several observers.
type MultiObserver []Observer

func (m MultiObserver) OnCallComplete(e CallEvent) {
	for _, o := range m {
		o.OnCallComplete(e)
	}
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
