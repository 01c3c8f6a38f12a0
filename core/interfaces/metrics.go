package interfaces

import "time"

// Metrics receives one observation per logical content request.
// outcome is "ok" or the error kind ("server", "client", "transport",
// "unexpected_format", "decode").
type Metrics interface {
	ObserveFetch(collection, outcome string, elapsed time.Duration)
}

// NopMetrics discards observations.
type NopMetrics struct{}

func (NopMetrics) ObserveFetch(collection, outcome string, elapsed time.Duration) {}
