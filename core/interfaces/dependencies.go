// ABOUTME: Dependencies container shared by every core component
// ABOUTME: One struct built at startup and passed explicitly instead of global singletons

package interfaces

// Dependencies holds the external collaborators the core needs.
// Nil Logger, Metrics and Clock are replaced with no-op or real defaults by
// WithDefaults.
type Dependencies struct {
	// HTTPClient is the content transport
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Preferences persists user preferences
	Preferences Cache

	// Metrics records fetch outcomes
	Metrics Metrics

	// Clock drives debounce timers
	Clock Clock
}

// WithDefaults returns a copy with nil optional collaborators filled in.
func (d Dependencies) WithDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = NopLogger{}
	}
	if d.Metrics == nil {
		d.Metrics = NopMetrics{}
	}
	if d.Clock == nil {
		d.Clock = RealClock{}
	}
	return d
}
